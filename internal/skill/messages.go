package skill

const (
	msgLaunch         = "What do you want to know?"
	msgLaunchReprompt = "I'm sorry, could you say that again?"
	msgOkay           = "Okay"
	msgHelp           = "To get the forecast for your current location, ask 'how's the weather'. You can also specify a location, like 'how's the weather in new york'"
	msgUnhandled      = "I didn't get that. " + msgHelp

	msgPermissionRequired = "To get the forecast for your current location, I need access to your device's address. Please grant permission in the Alexa app, or ask for the weather in a specific city."
	msgAddressNotSet      = "Your device doesn't have an address set. You can add one in the Alexa app, or ask for the weather in a specific city."
	msgLocationNotFound   = "I'm sorry, I couldn't find that location. Try asking for a city, like 'how's the weather in new york'."
	msgNoForecast         = "I'm sorry, there's no forecast available for that location right now."
	msgFailure            = "I'm sorry, something went wrong getting the forecast. Please try again later."

	cardTitle = "Weather Forecast"
)
