package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"carebridge-server/internal/models"
	"carebridge-server/internal/store"
	"carebridge-server/internal/utils"
)

// MessageHandler handles messaging related requests.
type MessageHandler struct {
	Store           *store.Store
	DefaultPageSize int
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(s *store.Store, defaultPageSize int) *MessageHandler {
	return &MessageHandler{Store: s, DefaultPageSize: defaultPageSize}
}

// GetMessages handles listing messages through the query engine.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	params := parseListParams(c, h.DefaultPageSize)
	filters := store.MessageFilters{
		Priority: c.Query("priority"),
		ThreadID: c.Query("threadId"),
	}
	if raw, ok := c.GetQuery("read"); ok && raw != store.FilterAll {
		read, err := strconv.ParseBool(raw)
		if err != nil {
			utils.BadRequest(c, "Invalid read filter: "+raw)
			return
		}
		filters.Read = &read
	}

	messages := h.Store.FilterMessages(params.Search, filters, params.Sort)
	utils.Success(c, "Messages fetched successfully", pagedResponse(messages, params, len(messages)))
}

// GetMessageByID handles fetching a single message.
func (h *MessageHandler) GetMessageByID(c *gin.Context) {
	message, err := h.Store.MessageByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Message fetched successfully", message)
}

// GetThread handles fetching one conversation's messages.
func (h *MessageHandler) GetThread(c *gin.Context) {
	messages := h.Store.MessagesByThread(c.Param("threadId"))
	utils.Success(c, "Thread fetched successfully", messages)
}

// GetConversations handles listing thread summaries for the inbox.
func (h *MessageHandler) GetConversations(c *gin.Context) {
	utils.Success(c, "Conversations fetched successfully", h.Store.Conversations())
}

// SendMessageRequest represents the request body for sending a message.
// SenderID is optional; staff without a patient or doctor record send
// under their display name.
type SendMessageRequest struct {
	SenderID    string   `json:"senderId"`
	Sender      string   `json:"sender"`
	Content     string   `json:"content" binding:"required"`
	Timestamp   string   `json:"timestamp" binding:"required"`
	IsFromUser  bool     `json:"isFromUser"`
	Attachments []string `json:"attachments"`
	Priority    string   `json:"priority" binding:"required,oneof=low normal high urgent"`
	ThreadID    string   `json:"threadId" binding:"required"`
}

// SendMessage handles appending a message to a thread.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if req.SenderID == "" && req.Sender == "" {
		utils.BadRequest(c, "Either senderId or sender is required")
		return
	}

	message, err := h.Store.AddMessage(models.Message{
		SenderID:    req.SenderID,
		Sender:      req.Sender,
		Content:     req.Content,
		Timestamp:   req.Timestamp,
		IsFromUser:  req.IsFromUser,
		Attachments: req.Attachments,
		Priority:    models.MessagePriority(req.Priority),
		Read:        false, // new messages start unread
		ThreadID:    req.ThreadID,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.Created(c, "Message sent successfully", message)
}

// UpdateMessage handles a partial message update.
func (h *MessageHandler) UpdateMessage(c *gin.Context) {
	var patch store.MessagePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	message, err := h.Store.UpdateMessage(c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Message updated successfully", message)
}

// MarkMessageAsRead handles flagging a message as read.
func (h *MessageHandler) MarkMessageAsRead(c *gin.Context) {
	read := true
	message, err := h.Store.UpdateMessage(c.Param("id"), store.MessagePatch{Read: &read})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Message marked as read", message)
}

// DeleteMessage handles removing a message.
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	if err := h.Store.DeleteMessage(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Message deleted successfully", nil)
}
