package api

import (
	"backend/config"
	"backend/controller"
	"backend/middleware"
	"net/http"
)

var router *http.ServeMux

func SetupRoutes(authController *controller.AuthController, token config.Token) *http.ServeMux {
	router = http.NewServeMux()

	setupPublicRoutes(authController)
	setupProtectedRoutes(authController, token)
	setupSystemRoutes(authController)

	return router
}

func applyMiddleware(h middleware.HandlerFunc) http.HandlerFunc {
	return middleware.ErrorHandler(
		middleware.TrustProxyMiddleware(
			middleware.LoggingMiddleware(h),
		),
	)
}

func applyAuthMiddleware(h middleware.HandlerFunc, token config.Token) http.HandlerFunc {
	return applyMiddleware(middleware.AuthMiddleware(token)(h))
}

func setupPublicRoutes(authController *controller.AuthController) {
	router.Handle("GET /api/hello", applyMiddleware(authController.Hello))
	router.Handle("POST /api/hello", applyMiddleware(authController.Hello))
	router.Handle("POST /api/signup", applyMiddleware(authController.Signup))
	router.Handle("POST /api/login", applyMiddleware(authController.Login))

	// shapes its own 401/404 bodies, so it skips the auth middleware
	router.Handle("GET /api/validate-token", applyMiddleware(authController.ValidateToken))
}

func setupProtectedRoutes(authController *controller.AuthController, token config.Token) {
	router.Handle("GET /api/private", applyAuthMiddleware(authController.Private, token))
	router.Handle("GET /api/me", applyAuthMiddleware(authController.Me, token))
	router.Handle("POST /api/logout", applyAuthMiddleware(authController.Logout, token))
}

func setupSystemRoutes(authController *controller.AuthController) {
	router.Handle("GET /api/healthz", applyMiddleware(authController.HealthCheck))
}
