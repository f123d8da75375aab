package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/pflag"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	pflag.Parse()
	args := pflag.Args()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: mcp-client <server-command> [<args>]")
		fmt.Fprintln(os.Stderr, "Example: mcp-client ./ceefax-mcp --templates ./templates")
		os.Exit(2)
	}

	ctx := context.Background()

	// Start the server as a subprocess
	cmd := exec.Command(args[0], args[1:]...)
	transport := &mcp.CommandTransport{Command: cmd}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "ceefax-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer session.Close()

	fmt.Println("Connected to CEEFAX MCP Server!")
	fmt.Println("Available commands:")
	fmt.Println("  /tools            - List available tools")
	fmt.Println("  /countries        - List country templates")
	fmt.Println("  /map <country>    - Render a country's weather map")
	fmt.Println("  /weather <city>   - Current weather and hourly forecast for a city")
	fmt.Println("  /exit             - Exit the client")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch {
		case input == "/exit":
			fmt.Println("Goodbye!")
			return

		case input == "/tools":
			listTools(ctx, session)

		case input == "/countries":
			callTool(ctx, session, "list_countries", map[string]interface{}{})

		case strings.HasPrefix(input, "/map"):
			name := strings.TrimSpace(strings.TrimPrefix(input, "/map"))
			if name == "" {
				name = "uk"
			}
			callTool(ctx, session, "render_country_map", map[string]interface{}{
				"country": name,
			})

		case strings.HasPrefix(input, "/weather "):
			callTool(ctx, session, "get_region_weather", map[string]interface{}{
				"city": strings.TrimSpace(strings.TrimPrefix(input, "/weather ")),
			})

		default:
			fmt.Println("Unknown command, try /tools")
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Scanner error: %v", err)
	}
}

func listTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("Available Tools:")
	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			log.Printf("Error listing tools: %v", err)
			return
		}
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
	fmt.Println()
}

func callTool(ctx context.Context, session *mcp.ClientSession, toolName string, args map[string]interface{}) {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		log.Printf("Error calling tool: %v", err)
		return
	}

	printResult(result)
}

// mapLines pulls the rendered rows out of a render_country_map result.
type mapLines struct {
	Lines []string `json:"lines"`
}

func printResult(result *mcp.CallToolResult) {
	if result.IsError {
		fmt.Printf("Error: ")
	} else {
		fmt.Printf("Result: ")
	}

	for _, content := range result.Content {
		switch v := content.(type) {
		case *mcp.TextContent:
			var m mapLines
			if err := json.Unmarshal([]byte(v.Text), &m); err == nil && len(m.Lines) > 0 {
				fmt.Println()
				fmt.Println(strings.Join(m.Lines, "\n"))
				continue
			}
			fmt.Println(v.Text)
		default:
			jsonData, err := json.MarshalIndent(content, "", "  ")
			if err != nil {
				fmt.Printf("%+v\n", content)
			} else {
				fmt.Println(string(jsonData))
			}
		}
	}
	fmt.Println()
}
