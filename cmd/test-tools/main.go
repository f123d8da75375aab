package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	// Optional overrides such as CEEFAX_BASE_URL or CEEFAX_TEMPLATES
	_ = godotenv.Load(".env")

	fmt.Println("Testing CEEFAX MCP Server and Tool Calling")
	fmt.Println("==========================================")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	serverPath := findServerBinary()
	if serverPath == "" {
		log.Fatal("MCP server binary not found. Run: go build -o ceefax-mcp ./cmd/ceefax-mcp")
	}
	fmt.Println("[ok] Test 1: MCP server binary found")

	cmd := exec.Command(serverPath)
	cmd.Env = os.Environ()
	cmd.Stderr = os.Stderr
	transport := &mcp.CommandTransport{Command: cmd}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("Failed to connect to MCP server: %v", err)
	}
	defer session.Close()
	fmt.Println("[ok] Test 2: Connected to MCP server")

	fmt.Println("\nTest 3: Listing available tools")
	listResult, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Fatalf("Failed to list tools: %v", err)
	}
	fmt.Printf("  Found %d tools:\n", len(listResult.Tools))
	for _, tool := range listResult.Tools {
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}

	fmt.Println("\nTest 4: Testing list_countries tool")
	call(ctx, session, "list_countries", map[string]interface{}{})

	fmt.Println("\nTest 5: Testing get_region_weather tool")
	call(ctx, session, "get_region_weather", map[string]interface{}{
		"city": "London",
	})

	fmt.Println("\nTest 6: Testing render_country_map tool")
	mapCtx, mapCancel := context.WithTimeout(ctx, 30*time.Second)
	defer mapCancel()
	call(mapCtx, session, "render_country_map", map[string]interface{}{
		"country": "uk",
	})

	fmt.Println("\n==========================================")
	fmt.Println("All MCP tool calling tests complete!")
	fmt.Println("\nTo test interactively, run: go run ./cmd/mcp-client ./ceefax-mcp")
}

func call(ctx context.Context, session *mcp.ClientSession, name string, args map[string]interface{}) {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			fmt.Printf("  [warn] %s timed out (is wttr.in reachable?)\n", name)
		} else {
			fmt.Printf("  [fail] %s failed: %v\n", name, err)
		}
		return
	}
	if result.IsError {
		fmt.Printf("  [fail] %s returned a tool error\n", name)
	} else {
		fmt.Printf("  [ok] %s called successfully\n", name)
	}

	for i, content := range result.Content {
		if i >= 3 {
			fmt.Printf("  ... and %d more content items\n", len(result.Content)-i)
			break
		}
		switch v := content.(type) {
		case *mcp.TextContent:
			preview := v.Text
			if len(preview) > 200 {
				preview = preview[:200] + "..."
			}
			fmt.Printf("    %s\n", preview)
		default:
			fmt.Printf("    [%T]\n", content)
		}
	}
}

func findServerBinary() string {
	candidates := []string{
		"./ceefax-mcp",
		"../../ceefax-mcp",
		"../../../ceefax-mcp",
	}
	for _, p := range candidates {
		if abs, err := filepath.Abs(p); err == nil {
			if _, err := os.Stat(abs); err == nil {
				return abs
			}
		}
	}
	return ""
}
