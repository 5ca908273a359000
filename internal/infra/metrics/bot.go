package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	updatesHandled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_updates_handled_total",
			Help: "Telegram updates handled, by command and outcome.",
		},
		[]string{"command", "outcome"},
	)

	sendRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bot_send_retries_total",
			Help: "Telegram send attempts that needed a retry.",
		},
	)

	remindersSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chores_reminders_sent_total",
			Help: "Reminder messages sent by the daily job.",
		},
	)

	rotationsRun = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chores_rotations_total",
			Help: "Weekly chore rotations executed.",
		},
	)

	penaltiesLogged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chores_penalties_logged_total",
			Help: "Incomplete chores written to the penalty log.",
		},
	)
)

func init() {
	register(updatesHandled, sendRetries, remindersSent, rotationsRun, penaltiesLogged)
}

func IncUpdateHandled(command, outcome string) {
	updatesHandled.WithLabelValues(command, outcome).Inc()
}

func IncSendRetry() { sendRetries.Inc() }

func AddRemindersSent(n int) { remindersSent.Add(float64(n)) }

func IncRotationsRun() { rotationsRun.Inc() }

func AddPenaltiesLogged(n int) { penaltiesLogged.Add(float64(n)) }
