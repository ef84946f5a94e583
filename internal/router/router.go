package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/vimco/vimco-api/docs"
	"github.com/vimco/vimco-api/internal/config"
	"github.com/vimco/vimco-api/internal/middleware"
	"github.com/vimco/vimco-api/internal/modules/handler"
	"github.com/vimco/vimco-api/internal/modules/serializer"
	"github.com/vimco/vimco-api/internal/modules/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config *config.Config
	Log    *zap.Logger
	// Auth is nil when auth.enabled is false; every route is then open.
	Auth service.AuthService

	CertificateHandler handler.CertificateHandler
	EventHandler       handler.EventHandler
	LogoHandler        handler.LogoHandler
	ProjectHandler     handler.ProjectHandler
	TestimonialHandler handler.TestimonialHandler
	ContactHandler     handler.ContactHandler
	ImportHandler      *handler.ImportHandler
	UploadHandler      *handler.UploadHandler
	AuthHandler        *handler.AuthHandler
}

// crudHandler is the route surface shared by the typed resource handlers.
type crudHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))
	r.Use(middleware.BodyLimit(int64(d.Config.App.BodyLimitMB) << 20))

	admin := middleware.AdminAuth(d.Auth)

	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "welcome to vimco") })
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.OK("ok", nil)) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if d.Config.Upload.Driver == "local" {
		r.Static("/images", d.Config.Upload.Dir)
	}

	api := r.Group("/api")
	{
		mountContent(api.Group("/certificates"), "certificate", d.CertificateHandler, admin)
		mountContent(api.Group("/events"), "event", d.EventHandler, admin)
		mountContent(api.Group("/logo"), "logo", d.LogoHandler, admin)
		mountContent(api.Group("/testimonial"), "testimonial", d.TestimonialHandler, admin)

		project := api.Group("/project")
		{
			mountContent(project, "project", d.ProjectHandler, admin)
			project.POST("/bulk-upload-project", admin, d.ImportHandler.BulkImport)
		}

		// leads: anyone may submit, only the back office may read or edit
		contact := api.Group("/contact-us")
		{
			contact.POST("/add-contact-us", d.ContactHandler.Create)
			contact.POST("/save-contact-us", d.ContactHandler.Save)
			contact.GET("/get-contact-us", admin, d.ContactHandler.List)
			contact.GET("/get-contact-us-byid/:id", admin, d.ContactHandler.Get)
			contact.PUT("/update-contact-us/:id", admin, d.ContactHandler.Update)
			contact.DELETE("/delete-contact-us/:id", admin, d.ContactHandler.Delete)
		}

		upload := api.Group("/upload")
		{
			upload.POST("/upload-files", admin, d.UploadHandler.UploadFiles)
		}

		if d.Auth != nil {
			auth := api.Group("/auth")
			{
				auth.POST("/login", d.AuthHandler.Login)
				auth.POST("/logout", admin, d.AuthHandler.Logout)
				auth.GET("/me", admin, d.AuthHandler.Me)
			}
		}
	}
	return r
}

// mountContent registers the five routes of a public marketing collection:
// reads are open, writes go through admin.
func mountContent(g *gin.RouterGroup, name string, h crudHandler, admin gin.HandlerFunc) {
	g.POST("/add-"+name, admin, h.Create)
	g.GET("/get-"+name, h.List)
	g.GET("/get-"+name+"-byid/:id", h.Get)
	g.PUT("/update-"+name+"/:id", admin, h.Update)
	g.DELETE("/delete-"+name+"/:id", admin, h.Delete)
}
