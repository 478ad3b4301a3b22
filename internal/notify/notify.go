package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/ramanasai/mindclean/internal/engine"
)

const appName = "MindClean"

// Info shows a plain desktop notification.
func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Done shows an alert titled with the app name, used when the day's streak is secured.
func Done(message string) error {
	return beeep.Alert(appName, message, "")
}

// DailyPrompt builds the evening reminder from the current streak and the open todo count.
func DailyPrompt(streak engine.Streak, today engine.Day, openTodos int) (string, string) {
	title := "🔥 " + appName
	var msg string
	switch {
	case streak.LastDay == today:
		msg = fmt.Sprintf("Déjà vidé aujourd'hui. Streak: %d jour%s.", streak.Count, plural(streak.Count))
	case streak.Count == 0:
		msg = "Prenez deux minutes pour vider votre tête."
	default:
		msg = fmt.Sprintf("Gardez la flamme: %d jour%s de streak. Qu'avez-vous en tête ce soir ?", streak.Count, plural(streak.Count))
	}
	if openTodos > 0 {
		msg += fmt.Sprintf(" %d chose%s à faire en attente.", openTodos, plural(openTodos))
	}
	return title, msg
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
