// Interactive terminal client for the relay. Useful for poking a room
// by hand: type to chat, /loc to share a position, /leave to leave.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
)

type outbound struct {
	EventType string   `json:"eventType,omitempty"`
	UserID    string   `json:"userId,omitempty"`
	Name      string   `json:"name,omitempty"`
	PinCode   string   `json:"pinCode,omitempty"`
	Message   string   `json:"message,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Username  string   `json:"username,omitempty"`
}

type inbound struct {
	Type      string  `json:"type"`
	UserID    string  `json:"userId"`
	Name      string  `json:"name"`
	Username  string  `json:"username"`
	Message   string  `json:"message"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

func main() {
	addr := flag.String("addr", "localhost:8080", "Relay host:port")
	pin := flag.String("pin", "", "Room pin code")
	name := flag.String("name", "anonymous", "Display name")
	flag.Parse()

	if *pin == "" {
		log.Fatal("-pin is required")
	}

	userID := uuid.NewString()
	url := fmt.Sprintf("ws://%s/ws/%s", *addr, *pin)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		log.Fatalf("Connection to %s failed: %v", url, err)
	}
	defer conn.Close()

	header := color.New(color.BgBlack, color.FgGreen).
		Render(fmt.Sprintf(" room %s — connected as %s ", *pin, *name))
	fmt.Println(header)

	send := func(evt outbound) {
		payload, err := json.Marshal(evt)
		if err != nil {
			log.Printf("Marshal failed: %v", err)
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Fatalf("Send failed: %v", err)
		}
	}

	send(outbound{EventType: "join", UserID: userID, Name: *name, PinCode: *pin})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				color.Red.Println("Connection closed:", err)
				return
			}
			printFrame(raw)
		}
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		send(outbound{EventType: "leave", UserID: userID, PinCode: *pin})
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		time.Sleep(200 * time.Millisecond)
		os.Exit(0)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "/quit":
			send(outbound{EventType: "leave", UserID: userID, PinCode: *pin})
			return
		case line == "/leave":
			send(outbound{EventType: "leave", UserID: userID, PinCode: *pin})
		case line == "/ping":
			if err := conn.WriteMessage(websocket.TextMessage, []byte("ping")); err != nil {
				log.Fatalf("Send failed: %v", err)
			}
		case strings.HasPrefix(line, "/loc "):
			lat, lon, err := parseCoordinates(line)
			if err != nil {
				color.Red.Println(err)
				continue
			}
			send(outbound{
				UserID: userID, Username: *name, PinCode: *pin,
				Latitude: &lat, Longitude: &lon,
			})
		default:
			send(outbound{UserID: userID, Name: *name, PinCode: *pin, Message: line})
		}
	}
	<-done
}

func printFrame(raw []byte) {
	if string(raw) == "pong" {
		color.Gray.Println("pong")
		return
	}
	var evt inbound
	if err := json.Unmarshal(raw, &evt); err != nil {
		color.Gray.Println(string(raw))
		return
	}
	at := time.UnixMilli(evt.Timestamp).Format("15:04:05")
	switch evt.Type {
	case "chat":
		color.Green.Printf("[%s] %s: %s\n", at, evt.Name, evt.Message)
	case "location":
		color.Yellow.Printf("[%s] %s is at (%.6f, %.6f)\n", at, evt.Username, evt.Latitude, evt.Longitude)
	default:
		color.Gray.Println(string(raw))
	}
}

func parseCoordinates(line string) (float64, float64, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("usage: /loc <latitude> <longitude>")
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad latitude %q", fields[1])
	}
	lon, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad longitude %q", fields[2])
	}
	return lat, lon, nil
}
