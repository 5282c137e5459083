package main

import "github.com/cleitonmarx/symbiont-ai-chatgateway/internal/app"

func main() {
	err := app.NewChatGatewayApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
