package session

// Notification is one user-facing message raised during a session, returned
// to the client for display.
type Notification struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Collector gathers the notifications one request produces. It is not safe
// for concurrent use; each request owns its own collector.
type Collector struct {
	notifications []Notification
}

func NewCollector() *Collector {
	return &Collector{notifications: []Notification{}}
}

func (c *Collector) Success(message string) {
	c.notifications = append(c.notifications, Notification{Level: "success", Message: message})
}

func (c *Collector) Info(message string) {
	c.notifications = append(c.notifications, Notification{Level: "info", Message: message})
}

func (c *Collector) Error(message string) {
	c.notifications = append(c.notifications, Notification{Level: "error", Message: message})
}

func (c *Collector) Notifications() []Notification {
	return c.notifications
}
