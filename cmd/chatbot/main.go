package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hoohsh/jetson-chatbot/internal"
	"github.com/hoohsh/jetson-chatbot/internal/ai"
	"github.com/hoohsh/jetson-chatbot/internal/initialization"
	"github.com/hoohsh/jetson-chatbot/internal/logger"
)

func main() {
	cfg, err := initialization.Initialize()
	if err != nil {
		logger.Errorf("Initialization error: %v", err)
		os.Exit(1)
	}

	defer func() {
		logger.CloseLogFile()
		logger.Infof("All log files closed")
	}()

	// Exit cleanly on Ctrl-C even mid-read
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		logger.Infof("Shutdown signal received, exiting...")
		logger.CloseLogFile()
		os.Exit(0)
	}()

	logger.Infof("CO2 chatbot %s ready (sensor on %s). Type /quit to exit, /status for details.", internal.BOT_VERSION, cfg.Sensor.Port)

	conv := ai.NewConversation(ai.GetConfig().SystemPrompt)
	promptColor := logger.GetColorFunc("green")
	replyColor := logger.GetColorFunc("cyan")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(promptColor("you> "))
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "/quit", "/exit":
			return
		case "/status":
			printStatus()
			continue
		}

		reply, err := ai.Turn(conv, line)
		if err != nil {
			logger.Errorf("Turn failed: %v", err)
			continue
		}

		fmt.Println(replyColor("bot> ") + reply)
	}

	if err := scanner.Err(); err != nil {
		logger.Errorf("Input error: %v", err)
	}
}

func printStatus() {
	status := ai.Status()
	for key, value := range status {
		fmt.Printf("  %s: %v\n", key, value)
	}
}
