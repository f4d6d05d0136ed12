package task

import (
	"HelpDesk/internal/mq"
	"HelpDesk/model"
	"HelpDesk/utils"
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// OrderNotice is the payload sent to the notify worker when an order is
// created.
type OrderNotice struct {
	OrderID     uint64 `json:"order_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Creator     string `json:"creator"`
	Attempt     int    `json:"attempt"`
}

// NotifyOrderCreated enqueues a mail notice for a new order. The notice
// is best effort: enqueue or delivery failures are logged and never
// surface to the creator, and the order itself is already committed.
func NotifyOrderCreated(ctx context.Context, order *model.Order, creator string) {
	notice := OrderNotice{
		OrderID:     order.ID,
		Title:       order.Name,
		Description: order.Description,
		Creator:     creator,
	}
	body, err := json.Marshal(notice)
	if err != nil {
		log.Printf("order notice %d: marshal failed: %v", order.ID, err)
		return
	}
	publisher, err := mq.GetPublisher()
	if err != nil {
		log.Printf("order notice %d: mq unavailable: %v", order.ID, err)
		return
	}
	if err := publisher.PublishNotice(ctx, body); err != nil {
		log.Printf("order notice %d: publish failed: %v", order.ID, err)
	}
}

// SendOrderNotice delivers one notice by mail; the worker calls this.
func SendOrderNotice(notice OrderNotice) error {
	recipients := utils.AdminRecipients()
	if len(recipients) == 0 {
		return fmt.Errorf("no admin recipients configured")
	}
	subject := fmt.Sprintf("New order #%d: %s", notice.OrderID, notice.Title)
	body := fmt.Sprintf("Order #%d from %s\n\n%s\n\n%s",
		notice.OrderID, notice.Creator, notice.Title, notice.Description)
	return utils.SendOrderMail(recipients, subject, body)
}
