package views

import (
	"ceefax/ui/tui/state"
)

func RenderMain(s state.AppState, props ViewProps) string {
	return MainView{}.Render(s, props)
}

func RenderDetails(s state.AppState, props ViewProps) string {
	return DetailsView{}.Render(s, props)
}

func RenderHourly(s state.AppState, region int, props ViewProps) string {
	return HourlyView{Region: region}.Render(s, props)
}

func RenderSelector(s state.AppState, available []string, props ViewProps) string {
	return SelectorView{Available: available}.Render(s, props)
}

func RenderLoading(s state.AppState, props ViewProps) string {
	return LoadingView{}.Render(s, props)
}

func RenderError(s state.AppState, props ViewProps) string {
	return ErrorView{}.Render(s, props)
}

// ContentHeight is the number of scrollable lines v currently has.
func ContentHeight(v state.View, s state.AppState, chartView string) int {
	switch v := v.(type) {
	case state.Details:
		return len(DetailsLines(s, nil))
	case state.Hourly:
		return len(HourlyLines(s, v.Region, chartView))
	case state.SelectCountry:
		return len(SelectorLines(v.Available, nil))
	}
	return 0
}
