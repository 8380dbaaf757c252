package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/roman-mazur/interactive-canvas/painter/lang"
)

// sendCommands posts the payload to the control server.
func sendCommands(serverURL, payload string) error {
	// Перевіряємо команди локально, щоб не відправляти сміття.
	if _, err := lang.ParseCommands(strings.NewReader(payload)); err != nil {
		return err
	}

	resp, err := http.Post(serverURL+"/", "text/plain", strings.NewReader(payload))
	if err != nil {
		return errors.Wrapf(err, "POST %s", serverURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return errors.Errorf("server returned %s: %s", resp.Status, body)
	}
	return nil
}

// currentColor asks the control server for the canvas color.
func currentColor(serverURL string) (string, error) {
	resp, err := http.Get(serverURL + "/color")
	if err != nil {
		return "", errors.Wrapf(err, "GET %s/color", serverURL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read color")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("server returned %s: %s", resp.Status, body)
	}
	return strings.TrimSpace(string(body)), nil
}

func main() {
	url := flag.String("url", "http://localhost:17000", "Control server URL")
	color := flag.String("color", "", "Set the color (red, green, blue) without notifying the canvas")
	cycle := flag.Int("cycle", 0, "Number of simulated presses")
	delay := flag.Duration("delay", time.Second, "Delay between presses")
	flag.Parse()

	if *color != "" {
		fmt.Printf("Setting color to %s...\n", *color)
		// Сповіщення немає, тому перемальовку просимо явно.
		if err := sendCommands(*url, *color+"\nupdate"); err != nil {
			log.Fatalf("Set color: %v", err)
		}
	}

	for i := 0; i < *cycle; i++ {
		if i > 0 {
			time.Sleep(*delay)
		}
		if err := sendCommands(*url, "press"); err != nil {
			log.Fatalf("Press %d: %v", i+1, err)
		}
		if c, err := currentColor(*url); err == nil {
			fmt.Printf("Press %d: color is %s\n", i+1, c)
		}
	}

	c, err := currentColor(*url)
	if err != nil {
		log.Fatalf("Query color: %v", err)
	}
	fmt.Println("Current color:", c)
}
