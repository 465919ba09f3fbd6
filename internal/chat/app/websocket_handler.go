package app

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"guidelight/internal/chat/domain"
	"guidelight/internal/chat/repository"
	"guidelight/pkg/logger"
	"guidelight/pkg/middlewares"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

// ChatWebsocketHandler dispatches websocket actions onto the chat
// use cases. One handler serves all connections; everything tied to a
// single connection lives in its session.
type ChatWebsocketHandler struct {
	msgRepo    repository.MessageRepository
	typingRepo repository.TypingRepository
	pubsub     repository.PubSub
	events     repository.NotificationPublisher

	groupUC *GroupUseCase
	dirUC   *DirectoryUseCase
	dirRepo repository.DirectoryRepository
}

// NewChatWebsocketHandler create ChatWebsocketHandler
func NewChatWebsocketHandler(
	msgRepo repository.MessageRepository,
	typingRepo repository.TypingRepository,
	pubsub repository.PubSub,
	events repository.NotificationPublisher,
	groupUC *GroupUseCase,
	dirUC *DirectoryUseCase,
	dirRepo repository.DirectoryRepository,
) *ChatWebsocketHandler {
	return &ChatWebsocketHandler{
		msgRepo:    msgRepo,
		typingRepo: typingRepo,
		pubsub:     pubsub,
		events:     events,
		groupUC:    groupUC,
		dirUC:      dirUC,
		dirRepo:    dirRepo,
	}
}

// session is the per-connection state: the open conversation's feed
// and typing tracker plus the cancel that tears both down.
type session struct {
	memberID   string
	memberName string

	feed       *MessageFeed
	tracker    *TypingTracker
	convCancel context.CancelFunc
}

func (s *session) closeConversation() {
	if s.convCancel != nil {
		s.convCancel()
		s.convCancel = nil
	}
	if s.tracker != nil {
		s.tracker.Close()
		s.tracker = nil
	}
	s.feed = nil
}

// wsNotifier forwards the feed's sound cues to the client.
type wsNotifier struct {
	h    *ChatWebsocketHandler
	conn *websocket.Conn
}

func (n *wsNotifier) MessageReceived() {
	n.h.sendResponse(n.conn, domain.WSResponse{
		Action:  "notify_sound",
		Success: true,
		Payload: map[string]interface{}{"cue": "received"},
	})
}

func (n *wsNotifier) MessageSent() {
	n.h.sendResponse(n.conn, domain.WSResponse{
		Action:  "notify_sound",
		Success: true,
		Payload: map[string]interface{}{"cue": "sent"},
	})
}

// HandleConnection is the websocket entry point.
func (h *ChatWebsocketHandler) HandleConnection(ctx context.Context, conn *websocket.Conn) {
	tokenMember := conn.Locals(middlewares.TokenMemberID)
	memberID, ok := tokenMember.(string)
	logger.Log.Info("websocket handle memberID", zap.String("userID", memberID), zap.String("ok", strconv.FormatBool(ok)))

	sess := &session{memberID: memberID, memberName: memberID}
	if profile, err := h.dirRepo.FindByID(ctx, memberID); err == nil {
		sess.memberName = profile.Username
	}

	ticker := time.NewTicker(10 * time.Minute)
	ctxClose, cancel := context.WithCancel(context.Background())

	defer func() {
		ticker.Stop()
		logger.Log.Info("websocket close", zap.String("userID", memberID))
		sess.closeConversation()
		conn.Close()
		cancel()
	}()

	// fiber answers close/ping/pong itself, the handlers below only
	// observe and, for ping, echo the pong manually.
	conn.SetCloseHandler(func(code int, text string) error {
		logger.Log.Infof("WebSocket closed:", conn.RemoteAddr())
		return nil
	})

	conn.SetPongHandler(func(appData string) error {
		logger.Log.Infof("Received PONG:", appData)
		return nil
	})

	conn.SetPingHandler(func(appData string) error {
		logger.Log.Infof("Received PING:", appData)
		return conn.WriteControl(
			websocket.PongMessage,
			[]byte(appData),
			time.Now().Add(time.Second),
		)
	})

	go func() {
		for {
			select {
			case <-ticker.C:
				pingMsg := "ping message"
				if err := conn.WriteMessage(websocket.PingMessage, []byte(pingMsg)); err != nil {
					logger.Log.Errorf("Ping error:", err)
					return
				}
				logger.Log.Infof("%s Ping sent", memberID)
			case <-ctxClose.Done():
				logger.Log.Infof("Ping goroutine cancelled for member:", memberID)
				return
			}
		}
	}()

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				logger.Log.Errorf("Connection closed:", err)
			} else {
				logger.Log.Errorf("websocket read error:", err)
			}
			return
		}
		h.execWebsocketAction(ctx, conn, sess, mt, message)
	}
}

func (h *ChatWebsocketHandler) execWebsocketAction(ctx context.Context, conn *websocket.Conn, sess *session, mt int, msg []byte) {
	switch mt {
	case websocket.TextMessage:
		h.textMessageAction(ctx, conn, sess, msg)
	default:
		h.sendError(conn, "unknown action")
	}
}

func (h *ChatWebsocketHandler) textMessageAction(ctx context.Context, conn *websocket.Conn, sess *session, msg []byte) {
	var req domain.WSRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		log.Printf("json unmarshal error: %v", err)
		return
	}

	resp := domain.WSResponse{Action: req.Action, Success: false, Payload: map[string]interface{}{}}
	switch req.Action {
	case string(domain.EnterConversation):
		h.enterConversation(conn, sess, req, &resp)

	case string(domain.LeaveConversation):
		sess.closeConversation()
		resp.Success = true
		resp.Payload["conversation_id"] = req.ConversationID

	case string(domain.SendMessage):
		if sess.feed == nil {
			resp.Error = "no open conversation"
			break
		}
		if req.ReplyTo != nil {
			sess.feed.StageReply(domain.ChatMessage{
				ID:         req.ReplyTo.MessageID,
				Content:    req.ReplyTo.Content,
				SenderID:   req.ReplyTo.SenderID,
				SenderName: req.ReplyTo.SenderName,
			})
		}
		if err := sess.feed.Send(ctx, req.Content); err != nil {
			resp.Error = err.Error()
		} else {
			resp.Success = true
		}

	case string(domain.Typing):
		if sess.tracker != nil {
			sess.tracker.DebounceTyping(ctx)
		}
		resp.Success = true

	case string(domain.StopTyping):
		if sess.tracker != nil {
			sess.tracker.ClearTyping(ctx)
		}
		resp.Success = true

	case string(domain.CreateGroup):
		invitees := membersFromRequest(req)
		group, err := h.groupUC.CreateGroup(ctx, sess.memberID, sess.memberName, req.GroupName, invitees)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Success = true
			resp.Payload["group_id"] = group.ID
		}

	case string(domain.AddMembers):
		newMembers := membersFromRequest(req)
		err := h.groupUC.AddMembers(ctx, sess.memberID, sess.memberName, req.GroupID, newMembers)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Success = true
		}

	case string(domain.LeaveGroup):
		err := h.groupUC.LeaveGroup(ctx, sess.memberID, sess.memberName, req.GroupID, func() {
			sess.closeConversation()
		})
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Success = true
			resp.Payload["group_id"] = req.GroupID
		}

	case string(domain.ListMembers):
		records, err := h.groupUC.ListMembers(ctx, req.GroupID)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Success = true
			resp.Payload["members"] = records
		}

	case string(domain.ListGroups):
		groups, err := h.groupUC.ListGroupsFor(ctx, sess.memberID)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Success = true
			resp.Payload["groups"] = groups
		}

	case string(domain.ListMentors):
		mentors, err := h.dirUC.ListMentors(ctx, sess.memberID, req.Role, req.Search)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Success = true
			resp.Payload["mentors"] = mentors
		}

	case string(domain.OpenDirect):
		resp.Success = true
		resp.Payload["conversation_id"] = h.dirUC.OpenDirect(sess.memberID, req.PeerID)

	default:
		h.sendError(conn, "unknown message types ")
	}

	if resp.Error != "" {
		logger.Log.Error("websocket err ", zap.String("MemberID", sess.memberID), zap.String("Action", req.Action), zap.String("err", resp.Error))
	}
	h.sendResponse(conn, resp)
}

// enterConversation swaps the session onto a new conversation: any
// previous feed and tracker are torn down first.
func (h *ChatWebsocketHandler) enterConversation(conn *websocket.Conn, sess *session, req domain.WSRequest, resp *domain.WSResponse) {
	sess.closeConversation()

	scope := domain.Scope{Kind: domain.ScopeKind(req.ScopeKind), ID: req.ConversationID}
	if scope.Kind != domain.ScopeGroup {
		scope.Kind = domain.ScopeDirect
	}

	var participants []string
	if scope.Kind == domain.ScopeDirect && req.PeerID != "" {
		scope.ID = domain.DirectConversationID(sess.memberID, req.PeerID)
		participants = []string{sess.memberID, req.PeerID}
	}

	ctxConv, cancel := context.WithCancel(context.Background())
	sess.convCancel = cancel

	notifier := &wsNotifier{h: h, conn: conn}
	feed := NewMessageFeed(h.msgRepo, h.pubsub, notifier, h.events, scope, sess.memberID, sess.memberName, participants)

	onChange := func(messages []domain.ChatMessage) {
		h.sendResponse(conn, domain.WSResponse{
			Action:  string(domain.NotifyMessage),
			Success: true,
			Payload: map[string]interface{}{
				"conversation_id": scope.ID,
				"messages":        messages,
			},
		})
	}
	onScroll := func() {
		h.sendResponse(conn, domain.WSResponse{
			Action:  "scroll_to_latest",
			Success: true,
			Payload: map[string]interface{}{"conversation_id": scope.ID},
		})
	}

	if err := feed.Open(ctxConv, onChange, onScroll); err != nil {
		cancel()
		sess.convCancel = nil
		resp.Error = err.Error()
		return
	}
	sess.feed = feed

	tracker := NewTypingTracker(h.typingRepo, h.pubsub, scope.ID, sess.memberID, sess.memberName)
	err := tracker.ListenToTyping(ctxConv, func(usernames []string) {
		h.sendResponse(conn, domain.WSResponse{
			Action:  string(domain.TypingStatus),
			Success: true,
			Payload: map[string]interface{}{
				"conversation_id": scope.ID,
				"usernames":       usernames,
			},
		})
	})
	if err != nil {
		logger.Log.Errorf("typing subscribe failed: ", err)
	}
	sess.tracker = tracker

	resp.Success = true
	resp.Payload["conversation_id"] = scope.ID
	resp.Payload["messages"] = feed.Snapshot()
}

func membersFromRequest(req domain.WSRequest) []domain.GroupMember {
	members := make([]domain.GroupMember, 0, len(req.Members))
	for i, id := range req.Members {
		name := id
		if i < len(req.MemberNames) {
			name = req.MemberNames[i]
		}
		members = append(members, domain.GroupMember{UserID: id, Username: name})
	}
	return members
}

// sendResponse writes one JSON frame to the client.
func (h *ChatWebsocketHandler) sendResponse(conn *websocket.Conn, resp domain.WSResponse) {
	b, _ := json.Marshal(resp)
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		logger.Log.Errorf("write message error:", err)
	}
}

func (h *ChatWebsocketHandler) sendError(conn *websocket.Conn, errorMsg string) {
	resp := domain.WSResponse{
		Action:  "error",
		Success: false,
		Payload: map[string]interface{}{
			"error": errorMsg,
		},
	}
	h.sendResponse(conn, resp)
}
