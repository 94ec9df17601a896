package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"github.com/kataras/iris/v12/middleware/rate"

	"real-estate-management-server/routes"
	"real-estate-management-server/storage"
	"real-estate-management-server/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: could not load .env file (this is normal in production)")
	}

	store := storage.NewMemoryStore()
	if os.Getenv("DB_CONNECTION_STRING") != "" {
		store = storage.NewDatabaseStore()
	}
	storage.InitializeRedis()

	api := routes.NewAPI(store)

	app := iris.New()
	app.Validator = validator.New()
	app.Use(iris.Compression)

	// 100 req/min general, 10 req/min on the credential endpoints.
	generalLimiter := rate.Limit(100.0/60.0, 100)
	authLimiter := rate.Limit(10.0/60.0, 10)
	app.Use(generalLimiter)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})
	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		if err := ctx.ReadJSON(&tokenInput); err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	user := app.Party("/api/user")
	{
		user.Post("/register", authLimiter, api.Register)
		user.Post("/login", authLimiter, api.Login)
		user.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshTokenHandler(api.Users.Get))
		user.Get("/{id}", accessTokenVerifierMiddleware, api.GetUser)
		user.Patch("/profile", accessTokenVerifierMiddleware, api.UpdateUserProfile)
		user.Patch("/password", accessTokenVerifierMiddleware, api.UpdatePassword)
	}

	property := app.Party("/api/property")
	{
		property.Get("/", api.ListProperties)
		property.Get("/available", api.ListAvailableProperties)
		property.Get("/search", api.SearchProperties)
		property.Get("/{id}", api.GetProperty)
		property.Get("/owner/{id}", api.GetPropertiesByOwner)
		property.Post("/", accessTokenVerifierMiddleware, api.CreateProperty)
		property.Patch("/{id}", accessTokenVerifierMiddleware, api.UpdateProperty)
		property.Patch("/{id}/status", accessTokenVerifierMiddleware, api.UpdatePropertyStatus)
		property.Post("/{id}/amenities", accessTokenVerifierMiddleware, api.AddAmenity)
		property.Post("/{id}/images", accessTokenVerifierMiddleware, api.AddImage)
		property.Delete("/{id}", accessTokenVerifierMiddleware, api.DeleteProperty)
	}

	tenant := app.Party("/api/tenant", accessTokenVerifierMiddleware)
	{
		tenant.Post("/", api.CreateTenant)
		tenant.Get("/me", api.GetMyTenantProfile)
		tenant.Get("/search", api.SearchTenants)
		tenant.Get("/{id}", api.GetTenant)
		tenant.Patch("/{id}", api.UpdateTenant)
		tenant.Post("/{id}/references", api.AddTenantReference)
		tenant.Get("/{id}/history", api.GetTenantRentalHistory)
		tenant.Get("/{id}/current", api.GetTenantCurrentRental)
		tenant.Delete("/{id}", utils.AdminOnlyMiddleware, api.DeleteTenant)
	}

	agreement := app.Party("/api/agreement", accessTokenVerifierMiddleware)
	{
		agreement.Post("/", api.CreateAgreement)
		agreement.Get("/active", api.ListActiveAgreements)
		agreement.Get("/{id}", api.GetAgreement)
		agreement.Get("/tenant/{id}", api.GetAgreementsByTenant)
		agreement.Get("/landlord/{id}", api.GetAgreementsByLandlord)
		agreement.Get("/property/{id}", api.GetAgreementsByProperty)
		agreement.Post("/{id}/send", api.SendAgreementForSigning)
		agreement.Post("/{id}/sign/tenant", api.SignAgreementByTenant)
		agreement.Post("/{id}/sign/landlord", api.SignAgreementByLandlord)
		agreement.Post("/{id}/terminate", api.TerminateAgreement)
		agreement.Patch("/{id}", api.UpdateAgreement)
		agreement.Delete("/{id}", utils.AdminOnlyMiddleware, api.DeleteAgreement)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/dashboard", api.AdminDashboard)
		admin.Get("/reports/users", api.AdminUserReport)
		admin.Get("/reports/properties", api.AdminPropertyReport)
		admin.Get("/reports/agreements", api.AdminAgreementReport)
		admin.Get("/reports/tenants", api.AdminTenantReport)
		admin.Get("/reports/activity", api.AdminActivitySummary)
		admin.Get("/reports/full", api.AdminFullReport)
		admin.Get("/agreements", api.ListAgreements)
		admin.Get("/agreements/statistics", api.AgreementStatistics)
		admin.Get("/properties/statistics", api.PropertyStatistics)
		admin.Get("/tenants", api.ListTenants)
		admin.Get("/users", api.ListUsers)
		admin.Patch("/users/{id}/role", api.AdminUpdateUserRole)
		admin.Delete("/users/{id}", api.AdminDeleteUser)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	app.Listen(":" + port)
}
