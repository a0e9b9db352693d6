package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pstuifzand/foliate/internal/app"
	"github.com/pstuifzand/foliate/internal/socket"
)

func main() {
	logFile, err := os.Create("foliate.log")
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	appendText := flag.String("append", "", "Append a paragraph to a running foliate instance")
	flag.Parse()

	// Handle append command
	if *appendText != "" {
		if err := sendAppendBlock(*appendText); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Paragraph appended")
		return
	}

	args := flag.Args()
	var filePath string

	if len(args) > 0 {
		filePath = args[0]
	}
	if filePath == "" {
		filePath = "untitled.json"
	}

	application, err := app.NewApp(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		os.Exit(1)
	}
}

// sendAppendBlock sends an append_block command to a running foliate
// instance
func sendAppendBlock(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("paragraph text cannot be empty")
	}

	// Find running instance
	socketPath, pid, err := socket.FindRunningInstance()
	if err != nil {
		return fmt.Errorf("no running foliate instance found: %w", err)
	}

	log.Printf("Found running instance at PID %d: %s", pid, socketPath)

	// Create client
	client, err := socket.NewClient(socketPath)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	// Send append_block command
	response, err := client.SendAppendBlock(text)
	if err != nil {
		return fmt.Errorf("failed to send command: %w", err)
	}

	if !response.Success {
		return fmt.Errorf("server error: %s", response.Message)
	}

	return nil
}
