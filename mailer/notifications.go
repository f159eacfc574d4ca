package mailer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// NotificationService composes and sends the application's emails. Every
// Notify method is fire-and-forget: failures are logged and swallowed so a
// mail outage never fails the business operation that triggered it.
type NotificationService struct {
	sender  EmailSender
	logger  *zap.Logger
	timeout time.Duration
}

func NewNotificationService(sender EmailSender, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		sender:  sender,
		logger:  logger,
		timeout: 10 * time.Second,
	}
}

func (n *NotificationService) send(to, subject, body string) {
	if n.sender == nil {
		n.logger.Debug("email delivery disabled, dropping message",
			zap.String("to", to), zap.String("subject", subject))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	if _, err := n.sender.SendEmail(ctx, to, subject, body); err != nil {
		n.logger.Warn("email send failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return
	}
	n.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
}

// NotifyCustomerActivation tells a customer their account is active.
func (n *NotificationService) NotifyCustomerActivation(email string) {
	body := "<p>Your account has been activated. You can now sign in and start shopping.</p>"
	n.send(email, "Your account is active", body)
}

// NotifyCustomerDeactivation tells a customer their account was deactivated.
func (n *NotificationService) NotifyCustomerDeactivation(email string) {
	body := "<p>Your account has been deactivated. Contact customer support if you believe this is a mistake.</p>"
	n.send(email, "Your account has been deactivated", body)
}

// NotifyCSRNewCustomer asks CSRs to review a fresh registration.
func (n *NotificationService) NotifyCSRNewCustomer(csrEmail, customerEmail string) {
	body := fmt.Sprintf("<p>A new customer registered with %s and is waiting for activation.</p>", customerEmail)
	n.send(csrEmail, "New customer awaiting activation", body)
}

// NotifyVendorLowStock warns a vendor that a product is running out.
func (n *NotificationService) NotifyVendorLowStock(vendorEmail, productName string, stock int) {
	body := fmt.Sprintf("<p>Stock for %s is down to %d units. Consider restocking.</p>", productName, stock)
	n.send(vendorEmail, "Low stock warning: "+productName, body)
}

// NotifyUserStatusChange tells a staff user their account was toggled.
func (n *NotificationService) NotifyUserStatusChange(email string, active bool) {
	state := "deactivated"
	if active {
		state = "activated"
	}
	body := fmt.Sprintf("<p>Your staff account has been %s.</p>", state)
	n.send(email, "Account "+state, body)
}
