package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"food-ordering-assistant/internal/chat"
	"food-ordering-assistant/internal/model"
	"food-ordering-assistant/pkg/response"
)

// AdminMessage godoc
// @Summary     Process an admin chat message
// @Description Classifies the message under the admin vocabulary, routes it and returns the assistant reply.
// @Tags        Chatbot
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "Message payload"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chatbot/admin/message [POST]
func (h *handler) AdminMessage(c *gin.Context) {
	h.message(c, model.RoleAdmin)
}

// CustomerMessage godoc
// @Summary     Process a customer chat message
// @Description Classifies the message under the customer vocabulary, routes it and returns the assistant reply.
// @Tags        Chatbot
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "Message payload"
// @Param       Authorization header string false "Bearer token, required for cart and order intents"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chatbot/customer/message [POST]
func (h *handler) CustomerMessage(c *gin.Context) {
	h.message(c, model.RoleCustomer)
}

func (h *handler) message(c *gin.Context, role model.Role) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.BadRequest(c, "Message is required")
		return
	}

	if !h.limiter.allow(rateKey(c, req.SessionID)) {
		response.TooManyRequests(c, chat.ErrRateLimited.Error())
		return
	}

	output, err := h.uc.ProcessTurn(ctx, req.toInput(role, bearerToken(c)))
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			response.BadRequest(c, "Message is required")
			return
		}
		h.l.Errorf(ctx, "uc.ProcessTurn: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newChatResp(output))
}

// History godoc
// @Summary     Get a session transcript
// @Description Returns the session's messages, oldest first, capped at the history page size.
// @Tags        Chatbot
// @Produce     json
// @Param       sessionId path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chatbot/history/{sessionId} [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Param("sessionId")
	if sessionID == "" {
		response.BadRequest(c, "Session ID is required")
		return
	}

	output, err := h.uc.History(ctx, sessionID)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newHistoryResp(sessionID, output))
}
