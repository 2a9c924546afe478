package email

// NoopProvider is used when email is disabled in config and in tests.
type NoopProvider struct{}

func (NoopProvider) Send(to, subject, htmlBody string) error { return nil }

func (NoopProvider) SendWelcome(to, username string) error { return nil }
