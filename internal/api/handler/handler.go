package handler

import "github.com/IT22102546/ArmiGo-Research-sub009/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth         *AuthHandler
	Reference    *ReferenceHandler
	Transfer     *TransferHandler
	Interest     *InterestHandler
	Message      *MessageHandler
	Notification *NotificationHandler
	Export       *ExportHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Reference:    NewReferenceHandler(svc.Reference),
		Transfer:     NewTransferHandler(svc.Transfer, svc.Match),
		Interest:     NewInterestHandler(svc.Interest),
		Message:      NewMessageHandler(svc.Message),
		Notification: NewNotificationHandler(svc.Notification),
		Export:       NewExportHandler(svc.Export),
	}
}
