package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler      *handlers.AuthHandler
	speakerHandler   *handlers.SpeakerHandler
	volunteerHandler *handlers.VolunteerHandler
	sponsorHandler   *handlers.SponsorHandler
	uploadHandler    *handlers.UploadHandler
	adminAuth        gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.adminAuth, d.authHandler.Logout)
			auth.GET("/me", d.adminAuth, d.authHandler.Me)
		}

		// Public site routes
		v1.GET("/speakers", d.speakerHandler.ListPublicSpeakers)
		v1.GET("/sponsors", d.sponsorHandler.ListPublicSponsors)
		v1.GET("/volunteers", d.volunteerHandler.ListPublicVolunteers)
		v1.POST("/volunteers/signup", d.volunteerHandler.Signup)

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.adminAuth)
		{
			admin.GET("/speakers", d.speakerHandler.ListAdminSpeakers)
			admin.GET("/speakers/:id", d.speakerHandler.GetSpeaker)
			admin.POST("/speakers", d.speakerHandler.CreateSpeaker)
			admin.PATCH("/speakers/:id", d.speakerHandler.UpdateSpeaker)
			admin.DELETE("/speakers/:id", d.speakerHandler.DeleteSpeaker)
			admin.POST("/speakers/reorder", d.speakerHandler.ReorderSpeakers)
			admin.POST("/speakers/bulk-delete", d.speakerHandler.BulkDeleteSpeakers)

			admin.GET("/volunteers", d.volunteerHandler.ListAdminVolunteers)
			admin.GET("/volunteers/:id", d.volunteerHandler.GetVolunteer)
			admin.PATCH("/volunteers/:id", d.volunteerHandler.UpdateVolunteer)
			admin.PATCH("/volunteers/:id/profile", d.volunteerHandler.UpdateVolunteerProfile)
			admin.DELETE("/volunteers/:id", d.volunteerHandler.DeleteVolunteer)
			admin.POST("/volunteers/reorder", d.volunteerHandler.ReorderVolunteers)
			admin.POST("/volunteers/bulk-delete", d.volunteerHandler.BulkDeleteVolunteers)

			admin.GET("/sponsors/:id", d.sponsorHandler.GetSponsor)
			admin.POST("/sponsors", d.sponsorHandler.CreateSponsor)
			admin.PATCH("/sponsors/:id", d.sponsorHandler.UpdateSponsor)
			admin.DELETE("/sponsors/:id", d.sponsorHandler.DeleteSponsor)

			admin.POST("/uploads/:bucket", d.uploadHandler.Upload)
			admin.DELETE("/uploads/:bucket", d.uploadHandler.Delete)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "community-day-backend",
			"version": "0.1.0",
		})
	})
}
