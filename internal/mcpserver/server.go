package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"ceefax/internal/country"
	"ceefax/internal/fetch"
	"ceefax/internal/log"
	"ceefax/internal/output"
	"ceefax/internal/teletext"
	"ceefax/internal/wttr"
)

// Catalog resolves country templates by name.
type Catalog interface {
	Load(name string) (country.Country, error)
	ListAvailable() ([]string, error)
}

// Server wraps the MCP server with the weather map capabilities.
type Server struct {
	mcpServer *mcp.Server
	provider  wttr.Provider
	catalog   Catalog
	palette   teletext.Palette
}

// Config holds configuration for the MCP server.
type Config struct {
	ServerName    string
	ServerVersion string
}

// NewServer creates a new MCP server instance.
func NewServer(cfg Config, provider wttr.Provider, catalog Catalog) *Server {
	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}

	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		provider:  provider,
		catalog:   catalog,
		palette:   teletext.DefaultPalette(),
	}
	s.registerTools()
	return s
}

// ListCountriesArgs defines the input for list_countries tool.
type ListCountriesArgs struct{}

// ListCountriesResult defines the output for list_countries tool.
type ListCountriesResult struct {
	Countries []string `json:"countries" jsonschema:"country template names"`
}

// RegionWeatherArgs defines the input for get_region_weather tool.
type RegionWeatherArgs struct {
	City string `json:"city" jsonschema:"city to look up, e.g. London"`
}

// RegionWeatherResult is the current condition and today's slots for one city.
type RegionWeatherResult struct {
	City        string   `json:"city"`
	TempC       int      `json:"temp_c"`
	FeelsLikeC  int      `json:"feels_like_c"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Wind        string   `json:"wind"`
	PrecipMM    string   `json:"precip_mm"`
	Hourly      []string `json:"hourly" jsonschema:"today's forecast rows"`
}

// RenderMapArgs defines the input for render_country_map tool.
type RenderMapArgs struct {
	Country string `json:"country" jsonschema:"country template name, see list_countries"`
}

// RegionTemp is one region's reading in a rendered map.
type RegionTemp struct {
	Name  string `json:"name"`
	City  string `json:"city"`
	TempC int    `json:"temp_c"`
	Icon  string `json:"icon"`
}

// RenderMapResult is the mosaic map as plain text lines.
type RenderMapResult struct {
	Country string       `json:"country"`
	Lines   []string     `json:"lines" jsonschema:"the map, one string per row"`
	Regions []RegionTemp `json:"regions"`
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_countries",
		Description: "List the country map templates that can be rendered.",
	}, s.handleListCountries)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_region_weather",
		Description: "Get the current weather and today's hourly forecast for a city from wttr.in.",
	}, s.handleGetRegionWeather)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "render_country_map",
		Description: "Fetch every region of a country and render its teletext weather map as text, with each region's temperature.",
	}, s.handleRenderCountryMap)
}

func (s *Server) handleListCountries(ctx context.Context, _ *mcp.CallToolRequest, _ ListCountriesArgs) (*mcp.CallToolResult, ListCountriesResult, error) {
	names, err := s.catalog.ListAvailable()
	if err != nil {
		return nil, ListCountriesResult{}, fmt.Errorf("failed to list countries: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return nil, ListCountriesResult{Countries: names}, nil
}

func (s *Server) handleGetRegionWeather(ctx context.Context, _ *mcp.CallToolRequest, args RegionWeatherArgs) (*mcp.CallToolResult, RegionWeatherResult, error) {
	city := strings.TrimSpace(args.City)
	if city == "" {
		return nil, RegionWeatherResult{}, fmt.Errorf("city is required")
	}

	rep, err := s.provider.Fetch(ctx, city)
	if err != nil {
		return nil, RegionWeatherResult{}, fmt.Errorf("failed to fetch weather for %s: %w", city, err)
	}
	cur, _ := rep.Current()

	res := RegionWeatherResult{
		City:        city,
		TempC:       wttr.ParseCelsius(cur.TempC),
		FeelsLikeC:  wttr.ParseCelsius(cur.FeelsLikeC),
		Icon:        wttr.Icon(cur.Description()),
		Description: cur.Description(),
		Wind:        fmt.Sprintf("%s %s km/h", cur.Winddir16Point, cur.WindspeedKmph),
		PrecipMM:    cur.PrecipMM,
		Hourly:      []string{},
	}
	for _, row := range output.BuildHourly(rep) {
		res.Hourly = append(res.Hourly, row.String())
	}
	return nil, res, nil
}

func (s *Server) handleRenderCountryMap(ctx context.Context, _ *mcp.CallToolRequest, args RenderMapArgs) (*mcp.CallToolResult, RenderMapResult, error) {
	c, err := s.catalog.Load(args.Country)
	if err != nil {
		return nil, RenderMapResult{}, err
	}

	data, err := fetch.Collect(ctx, s.provider, c)
	if err != nil {
		return nil, RenderMapResult{}, err
	}

	grid := teletext.Render(c, data.Reports, s.palette)
	res := RenderMapResult{Country: c.Name, Lines: []string{}, Regions: []RegionTemp{}}
	for y := 0; y < grid.Height(); y++ {
		res.Lines = append(res.Lines, grid.Row(y))
	}
	for _, r := range c.Regions {
		cur, _ := data.Reports[r.Name].Current()
		res.Regions = append(res.Regions, RegionTemp{
			Name:  r.Name,
			City:  r.City,
			TempC: wttr.ParseCelsius(cur.TempC),
			Icon:  wttr.Icon(cur.Description()),
		})
	}
	log.Infow("map rendered", "country", c.Name, "request_id", data.RequestID)
	return nil, res, nil
}

// Start starts the MCP server using stdio transport.
func (s *Server) Start(ctx context.Context) error {
	log.Infow("starting MCP server on stdio")
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}
