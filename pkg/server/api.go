package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/alvilabs/portfolio-api/pkg/config"
	handlers "github.com/alvilabs/portfolio-api/pkg/handlers/http"
	"github.com/alvilabs/portfolio-api/pkg/middleware"
)

type (
	ApiServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	ApiServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewApiServer(di ApiServerDI) *ApiServer {
	return &ApiServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *ApiServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()
	addr := fmt.Sprintf(":%d", s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("Starting api server")
	return s.Router.Listen(addr)
}

func (s *ApiServer) setupRoutes() {
	s.Router.Use(s.middlewareTransport.PanicRecoverMiddleware.Middleware())
	s.Router.Use(s.middlewareTransport.SecurityMiddleware.Middleware())
	s.Router.Use(s.middlewareTransport.MetricsMiddleware.Middleware())

	v1 := s.Router.Group("/api/v1")
	{
		blogs := v1.Group("/blogs")
		{
			blogs.Get("", s.handlerTransport.ListPublishedBlogsHandler.Handle)
			blogs.Get("/:slug", s.handlerTransport.GetBlogHandler.Handle)
		}

		projects := v1.Group("/projects")
		{
			projects.Get("", s.handlerTransport.ListPublishedProjectsHandler.Handle)
			projects.Get("/:slug", s.handlerTransport.GetProjectHandler.Handle)
		}

		v1.Post("/contact",
			s.middlewareTransport.ContactLimitMiddleware.Middleware(),
			s.handlerTransport.CreateContactHandler.Handle,
		)

		v1.Post("/chat",
			s.middlewareTransport.ChatLimitMiddleware.Middleware(),
			s.handlerTransport.ChatHandler.Handle,
		)

		admin := v1.Group("/admin")
		{
			// The login handler runs its own limiter check after input
			// validation, so the route carries no limit middleware.
			admin.Post("/login", s.handlerTransport.LoginHandler.Handle)

			protected := admin.Group("",
				s.middlewareTransport.AdminLimitMiddleware.Middleware(),
				s.middlewareTransport.AdminAuthMiddleware.Middleware(),
			)
			{
				protected.Post("/logout", s.handlerTransport.LogoutHandler.Handle)

				adminBlogs := protected.Group("/blogs")
				{
					adminBlogs.Get("", s.handlerTransport.ListBlogsHandler.Handle)
					adminBlogs.Post("", s.handlerTransport.CreateBlogHandler.Handle)
					adminBlogs.Put("/:slug", s.handlerTransport.UpdateBlogHandler.Handle)
					adminBlogs.Delete("/:slug", s.handlerTransport.DeleteBlogHandler.Handle)
				}

				adminProjects := protected.Group("/projects")
				{
					adminProjects.Get("", s.handlerTransport.ListProjectsHandler.Handle)
					adminProjects.Post("", s.handlerTransport.CreateProjectHandler.Handle)
					adminProjects.Put("/:slug", s.handlerTransport.UpdateProjectHandler.Handle)
					adminProjects.Delete("/:slug", s.handlerTransport.DeleteProjectHandler.Handle)
				}

				adminContacts := protected.Group("/contacts")
				{
					adminContacts.Get("", s.handlerTransport.ListContactsHandler.Handle)
					adminContacts.Put("/:contact_id/read", s.handlerTransport.MarkContactReadHandler.Handle)
					adminContacts.Delete("/:contact_id", s.handlerTransport.DeleteContactHandler.Handle)
				}
			}
		}
	}
}

func (s *ApiServer) Shutdown() error {
	return s.Router.Shutdown()
}
