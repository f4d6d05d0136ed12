package router

import (
	"HelpDesk/internal/handler"
	"HelpDesk/utils"

	"github.com/gin-gonic/gin"
)

// InitRouter builds API routes.
func InitRouter() *gin.Engine {
	r := gin.Default()
	r.Use(utils.CORSMiddleware())

	api := r.Group("/api")
	{
		api.POST("/login", handler.Login)
		api.GET("/versions", handler.ListVersions)

		auth := api.Group("")
		auth.Use(utils.AuthMiddleware())
		{
			auth.GET("/profile", handler.Profile)

			auth.POST("/upload", handler.Upload)
			auth.GET("/download/:hash", handler.Download)

			order := auth.Group("/orders")
			{
				order.POST("", handler.CreateOrder)
				order.GET("", handler.ListOrders)
				order.GET("/:id", handler.GetOrder)
				order.GET("/:id/edit", handler.GetEditOrder)
				order.PUT("/:id", handler.UpdateOrder)
				order.DELETE("/:id", handler.DeleteOrder)
				order.DELETE("/:id/files", handler.DeleteOrderFiles)
			}

			consultation := auth.Group("/consultations")
			{
				consultation.POST("", handler.CreateConsultation)
				consultation.GET("", handler.ListConsultations)
			}

			note := auth.Group("/notes")
			{
				note.POST("", handler.CreateNote)
				note.GET("", handler.ListNotes)
				note.DELETE("/:id", handler.DeleteNote)
			}

			recommendation := auth.Group("/recommendations")
			{
				recommendation.POST("", handler.CreateRecommendation)
				recommendation.GET("", handler.ListRecommendations)
			}

			auth.GET("/themes", handler.ListThemes)
			auth.GET("/services", handler.ListServices)
		}

		moderator := api.Group("")
		moderator.Use(utils.AuthMiddleware(), utils.RequireModerator())
		{
			group := moderator.Group("/group-orders")
			{
				group.POST("", handler.CreateGroupOrder)
				group.GET("", handler.ListGroupOrders)
				group.GET("/:id", handler.GetGroupOrder)
				group.PUT("/:id", handler.UpdateGroupOrder)
				group.GET("/:id/select-status", handler.SelectGroupOrderStatus)
				group.POST("/:id/orders/:orderID", handler.AttachOrder)
				group.POST("/:id/results", handler.AddResult)
				group.PUT("/:id/results/:resultID", handler.UpdateResult)
				group.PUT("/:id/services", handler.SetGroupOrderServices)
			}

			moderator.GET("/performers", handler.ListPerformers)
			moderator.GET("/files", handler.ListFiles)
		}

		admin := api.Group("/admin")
		admin.Use(utils.AuthMiddleware(), utils.RequireAdmin())
		{
			admin.POST("/users", handler.CreateUser)
			admin.GET("/users", handler.ListUsers)
			admin.PUT("/users/:id", handler.UpdateUser)

			admin.POST("/departments", handler.CreateDepartment)
			admin.GET("/departments", handler.ListDepartments)
			admin.PUT("/departments/:id", handler.UpdateDepartment)
			admin.DELETE("/departments/:id", handler.DeleteDepartment)

			admin.POST("/organizations", handler.CreateOrganization)
			admin.GET("/organizations", handler.ListOrganizations)
			admin.DELETE("/organizations/:id", handler.DeleteOrganization)

			admin.POST("/positions", handler.CreatePosition)
			admin.GET("/positions", handler.ListPositions)
			admin.DELETE("/positions/:id", handler.DeletePosition)

			admin.POST("/services", handler.CreateService)
			admin.DELETE("/services/:id", handler.DeleteService)

			admin.POST("/themes", handler.CreateTheme)
			admin.DELETE("/themes/:id", handler.DeleteTheme)

			admin.POST("/versions", handler.CreateVersion)
		}
	}
	return r
}
