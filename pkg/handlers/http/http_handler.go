package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Auth
	LoginHandler  Handler
	LogoutHandler Handler

	// Chat
	ChatHandler Handler

	// Contact
	CreateContactHandler   Handler
	ListContactsHandler    Handler
	MarkContactReadHandler Handler
	DeleteContactHandler   Handler

	// Blog
	ListBlogsHandler          Handler
	CreateBlogHandler         Handler
	UpdateBlogHandler         Handler
	DeleteBlogHandler         Handler
	ListPublishedBlogsHandler Handler
	GetBlogHandler            Handler

	// Project
	ListProjectsHandler          Handler
	CreateProjectHandler         Handler
	UpdateProjectHandler         Handler
	DeleteProjectHandler         Handler
	ListPublishedProjectsHandler Handler
	GetProjectHandler            Handler
}
