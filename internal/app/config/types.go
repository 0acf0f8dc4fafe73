package config

type DriverConfig struct {
	Redis    Redis
	MongoDB  MongoDB
	RabbitMQ RabbitMQ
	Logger   Logger
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type MongoDB struct {
	Host     string
	Port     string
	DbName   string
	Username string
	Password string
}

type RabbitMQ struct {
	Host     string
	Port     string
	Username string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App      App
	JWT      JWT
	Schedule Schedule
	Matching Matching
}

type App struct {
	Env             string
	Port            string
	Version         string
	EndpointPrefix  string
	Timezone        string
	ShutdownTimeout int
	MaxRequests     int
}

type JWT struct {
	Secret string
}

// Schedule holds the consultation-schedule policy knobs. Defaults reproduce
// the production behavior: 18 half-hour slots from 09:00 to 17:30 and a
// three-day lead-time window during which dates are frozen.
type Schedule struct {
	DayStartHour    int
	DayStartMinute  int
	DayEndHour      int
	DayEndMinute    int
	SlotMinutes     int
	LeadTimeDays    int
	StoreTTLDays    int
}

type Matching struct {
	CronSpec       string
	MatchQueue     string
	LockTTLMinutes int
}
