package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"food-ordering-assistant/internal/auth"
	"food-ordering-assistant/internal/catalog"
	catalogHTTP "food-ordering-assistant/internal/catalog/delivery/http"
	catalogSqlite "food-ordering-assistant/internal/catalog/repository/sqlite"
	catalogUsecase "food-ordering-assistant/internal/catalog/usecase"
	chatHTTP "food-ordering-assistant/internal/chat/delivery/http"
	chatSqlite "food-ordering-assistant/internal/chat/repository/sqlite"
	chatUsecase "food-ordering-assistant/internal/chat/usecase"
	"food-ordering-assistant/internal/middleware"
	orderingSqlite "food-ordering-assistant/internal/ordering/repository/sqlite"
	orderingUsecase "food-ordering-assistant/internal/ordering/usecase"
)

// setupCatalogDomain initializes the catalog domain and registers its REST
// routes. The use case is returned because the chat engine consumes it too.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupCatalogDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) catalog.UseCase {
	repo := catalogSqlite.New(srv.db, srv.l)
	uc := catalogUsecase.New(repo, srv.l)
	h := catalogHTTP.New(srv.l, uc)
	catalogHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Catalog domain registered")
	return uc
}

// setupChatDomain initializes the conversational engine and registers the
// chatbot routes.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, catalogUC catalog.UseCase) {
	orderingRepo := orderingSqlite.New(srv.db, srv.l)
	orderingUC := orderingUsecase.New(orderingRepo, srv.l)

	chatRepo := chatSqlite.New(srv.db, srv.l)
	uc := chatUsecase.New(chatRepo, catalogUC, orderingUC, auth.NewGate(srv.jwtSecret), srv.model, srv.l)

	h := chatHTTP.New(srv.l, uc, srv.rateLimitPerMin)
	chatHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Chat domain registered")
}
