package email

// Provider sends transactional mail. Delivery failures must never block the
// request that triggered them.
type Provider interface {
	Send(to, subject, htmlBody string) error
	SendWelcome(to, username string) error
}
