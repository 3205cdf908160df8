package recipeBoxFactory

import (
	"net/http"

	"github.com/gin-gonic/gin"
	authController "github.com/plateful/recipe-box/internal/controllers/auth"
	authMiddleware "github.com/plateful/recipe-box/internal/controllers/middlewares/auth"
	loggingMiddleware "github.com/plateful/recipe-box/internal/controllers/middlewares/logging"
	metricsMiddleware "github.com/plateful/recipe-box/internal/controllers/middlewares/metrics"
	recipeController "github.com/plateful/recipe-box/internal/controllers/recipe"
	"github.com/plateful/recipe-box/internal/services/docstore"
	localProvider "github.com/plateful/recipe-box/internal/services/identity/local"
	"github.com/plateful/recipe-box/internal/services/recipes"
	"github.com/plateful/recipe-box/internal/services/session"
	"github.com/plateful/recipe-box/pkg/auth/tokenAuth"
	pasetoToken "github.com/plateful/recipe-box/pkg/auth/tokenAuth/paseto"
	"github.com/plateful/recipe-box/pkg/config/env"
	"go.uber.org/zap"
)

type (
	Factory struct {
		config   env.Config
		store    docstore.Store
		provider *localProvider.Provider

		Sessions  *session.Store
		TokenAuth tokenAuth.Maker
		Router    *gin.Engine

		recipeBoxHandler recipeBoxHandler
	}

	recipeBoxHandler struct {
		authController   *authController.Controller
		recipeController *recipeController.Controller
	}
)

// New wires the service: token maker, identity provider, session store,
// recipe repository, controllers and routes.
func New(config env.Config, store docstore.Store, logger *zap.Logger) (*Factory, error) {
	tokenMaker, err := pasetoToken.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, err
	}

	provider := localProvider.New(store, tokenMaker, config.AccessTokenDuration)
	sessions := session.New(provider, store)
	repo := recipes.NewRepository(store)

	factory := &Factory{
		config:    config,
		store:     store,
		provider:  provider,
		Sessions:  sessions,
		TokenAuth: tokenMaker,
		recipeBoxHandler: recipeBoxHandler{
			authController:   authController.New(sessions),
			recipeController: recipeController.New(repo),
		},
	}

	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		loggingMiddleware.RequestLogger(logger),
		metricsMiddleware.Metrics(),
	)

	factory.setupRoutes(router)

	factory.Router = router
	return factory, nil
}

func (f *Factory) setupRoutes(router *gin.Engine) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", f.recipeBoxHandler.authController.Signup)
		auth.POST("/login", f.recipeBoxHandler.authController.Login)
		auth.POST("/logout", authMiddleware.AuthMiddleware(f.TokenAuth), f.recipeBoxHandler.authController.Logout)
	}

	recipeRoutes := router.Group("/recipes")
	{
		recipeRoutes.GET("", f.recipeBoxHandler.recipeController.List)
		recipeRoutes.GET("/:id", f.recipeBoxHandler.recipeController.Recipe)
		recipeRoutes.POST("", authMiddleware.AuthMiddleware(f.TokenAuth), f.recipeBoxHandler.recipeController.Create)
	}

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metricsMiddleware.Handler()))
}

func (f *Factory) Start(address string) error {
	return f.Router.Run(address)
}

// Close releases the session store and identity provider goroutines.
func (f *Factory) Close() {
	f.Sessions.Close()
	f.provider.Close()
}
