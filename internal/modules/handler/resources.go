package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/vimco/vimco-api/internal/modules/model"
	"github.com/vimco/vimco-api/internal/modules/schema"
)

var (
	CertificateResource = Resource[model.Certificate]{
		Name:        "Certificate",
		New:         model.NewCertificate,
		CreateInput: func() schema.Input[model.Certificate] { return &schema.CertificateInput{} },
		UpdateInput: func() schema.Input[model.Certificate] { return &schema.CertificateInput{} },
	}

	EventResource = Resource[model.Event]{
		Name:        "Event",
		New:         model.NewEvent,
		CreateInput: func() schema.Input[model.Event] { return &schema.EventInput{} },
		UpdateInput: func() schema.Input[model.Event] { return &schema.EventInput{} },
	}

	LogoResource = Resource[model.Logo]{
		Name:        "Logo",
		New:         model.NewLogo,
		CreateInput: func() schema.Input[model.Logo] { return &schema.LogoInput{} },
		UpdateInput: func() schema.Input[model.Logo] { return &schema.LogoInput{} },
	}

	ProjectResource = Resource[model.Project]{
		Name:        "Project",
		New:         model.NewProject,
		CreateInput: func() schema.Input[model.Project] { return &schema.ProjectInput{} },
		UpdateInput: func() schema.Input[model.Project] { return &schema.ProjectPatch{} },
	}

	TestimonialResource = Resource[model.Testimonial]{
		Name:        "Testimonial",
		New:         model.NewTestimonial,
		CreateInput: func() schema.Input[model.Testimonial] { return &schema.TestimonialInput{} },
		UpdateInput: func() schema.Input[model.Testimonial] { return &schema.TestimonialInput{} },
	}

	ContactResource = Resource[model.ContactSubmission]{
		Name:        "Contact",
		New:         model.NewContactSubmission,
		CreateInput: func() schema.Input[model.ContactSubmission] { return &schema.ContactInput{} },
		UpdateInput: func() schema.Input[model.ContactSubmission] { return &schema.ContactPatch{} },
	}
)

// The typed handlers below only pin the generic routes to one model each so
// swag can describe every path with its own payload and response types.

type CertificateHandler struct {
	*ResourceHandler[model.Certificate]
}

// Create godoc
//
//	@Summary		Create certificate
//	@Tags			certificate
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	schema.CertificateInput	true	"payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Certificate}
//	@Failure		400	{object}	serializer.Response
//	@Failure		500	{object}	serializer.Response
//	@Router			/certificates/add-certificate [post]
func (h CertificateHandler) Create(c *gin.Context) { h.ResourceHandler.Create(c) }

// List godoc
//
//	@Summary		List certificates
//	@Tags			certificate
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]model.Certificate}
//	@Failure		500	{object}	serializer.Response
//	@Router			/certificates/get-certificate [get]
func (h CertificateHandler) List(c *gin.Context) { h.ResourceHandler.List(c) }

// Get godoc
//
//	@Summary		Get certificate
//	@Tags			certificate
//	@Produce		json
//	@Param			id	path	string	true	"Certificate id"
//	@Success		200	{object}	serializer.Response{data=model.Certificate}
//	@Failure		404	{object}	serializer.Response
//	@Router			/certificates/get-certificate-byid/{id} [get]
func (h CertificateHandler) Get(c *gin.Context) { h.ResourceHandler.Get(c) }

// Update godoc
//
//	@Summary		Update certificate
//	@Tags			certificate
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Certificate id"
//	@Param			payload	body	schema.CertificateInput	true	"fields to write"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Certificate}
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/certificates/update-certificate/{id} [put]
func (h CertificateHandler) Update(c *gin.Context) { h.ResourceHandler.Update(c) }

// Delete godoc
//
//	@Summary		Delete certificate
//	@Tags			certificate
//	@Produce		json
//	@Param			id	path	string	true	"Certificate id"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/certificates/delete-certificate/{id} [delete]
func (h CertificateHandler) Delete(c *gin.Context) { h.ResourceHandler.Delete(c) }

type EventHandler struct {
	*ResourceHandler[model.Event]
}

// Create godoc
//
//	@Summary		Create event
//	@Tags			event
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	schema.EventInput	true	"payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Event}
//	@Failure		400	{object}	serializer.Response
//	@Failure		500	{object}	serializer.Response
//	@Router			/events/add-event [post]
func (h EventHandler) Create(c *gin.Context) { h.ResourceHandler.Create(c) }

// List godoc
//
//	@Summary		List events
//	@Tags			event
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]model.Event}
//	@Failure		500	{object}	serializer.Response
//	@Router			/events/get-event [get]
func (h EventHandler) List(c *gin.Context) { h.ResourceHandler.List(c) }

// Get godoc
//
//	@Summary		Get event
//	@Tags			event
//	@Produce		json
//	@Param			id	path	string	true	"Event id"
//	@Success		200	{object}	serializer.Response{data=model.Event}
//	@Failure		404	{object}	serializer.Response
//	@Router			/events/get-event-byid/{id} [get]
func (h EventHandler) Get(c *gin.Context) { h.ResourceHandler.Get(c) }

// Update godoc
//
//	@Summary		Update event
//	@Tags			event
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Event id"
//	@Param			payload	body	schema.EventInput	true	"fields to write"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Event}
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/events/update-event/{id} [put]
func (h EventHandler) Update(c *gin.Context) { h.ResourceHandler.Update(c) }

// Delete godoc
//
//	@Summary		Delete event
//	@Tags			event
//	@Produce		json
//	@Param			id	path	string	true	"Event id"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/events/delete-event/{id} [delete]
func (h EventHandler) Delete(c *gin.Context) { h.ResourceHandler.Delete(c) }

type LogoHandler struct {
	*ResourceHandler[model.Logo]
}

// Create godoc
//
//	@Summary		Create logo
//	@Tags			logo
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	schema.LogoInput	true	"payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Logo}
//	@Failure		400	{object}	serializer.Response
//	@Failure		500	{object}	serializer.Response
//	@Router			/logo/add-logo [post]
func (h LogoHandler) Create(c *gin.Context) { h.ResourceHandler.Create(c) }

// List godoc
//
//	@Summary		List logos
//	@Tags			logo
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]model.Logo}
//	@Failure		500	{object}	serializer.Response
//	@Router			/logo/get-logo [get]
func (h LogoHandler) List(c *gin.Context) { h.ResourceHandler.List(c) }

// Get godoc
//
//	@Summary		Get logo
//	@Tags			logo
//	@Produce		json
//	@Param			id	path	string	true	"Logo id"
//	@Success		200	{object}	serializer.Response{data=model.Logo}
//	@Failure		404	{object}	serializer.Response
//	@Router			/logo/get-logo-byid/{id} [get]
func (h LogoHandler) Get(c *gin.Context) { h.ResourceHandler.Get(c) }

// Update godoc
//
//	@Summary		Update logo
//	@Tags			logo
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Logo id"
//	@Param			payload	body	schema.LogoInput	true	"fields to write"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Logo}
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/logo/update-logo/{id} [put]
func (h LogoHandler) Update(c *gin.Context) { h.ResourceHandler.Update(c) }

// Delete godoc
//
//	@Summary		Delete logo
//	@Tags			logo
//	@Produce		json
//	@Param			id	path	string	true	"Logo id"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/logo/delete-logo/{id} [delete]
func (h LogoHandler) Delete(c *gin.Context) { h.ResourceHandler.Delete(c) }

type ProjectHandler struct {
	*ResourceHandler[model.Project]
}

// Create godoc
//
//	@Summary		Create project
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	schema.ProjectInput	true	"payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Project}
//	@Failure		400	{object}	serializer.Response
//	@Failure		500	{object}	serializer.Response
//	@Router			/project/add-project [post]
func (h ProjectHandler) Create(c *gin.Context) { h.ResourceHandler.Create(c) }

// List godoc
//
//	@Summary		List projects
//	@Tags			project
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]model.Project}
//	@Failure		500	{object}	serializer.Response
//	@Router			/project/get-project [get]
func (h ProjectHandler) List(c *gin.Context) { h.ResourceHandler.List(c) }

// Get godoc
//
//	@Summary		Get project
//	@Tags			project
//	@Produce		json
//	@Param			id	path	string	true	"Project id"
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Failure		404	{object}	serializer.Response
//	@Router			/project/get-project-byid/{id} [get]
func (h ProjectHandler) Get(c *gin.Context) { h.ResourceHandler.Get(c) }

// Update godoc
//
//	@Summary		Update project
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Project id"
//	@Param			payload	body	schema.ProjectPatch	true	"fields to write"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/project/update-project/{id} [put]
func (h ProjectHandler) Update(c *gin.Context) { h.ResourceHandler.Update(c) }

// Delete godoc
//
//	@Summary		Delete project
//	@Tags			project
//	@Produce		json
//	@Param			id	path	string	true	"Project id"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/project/delete-project/{id} [delete]
func (h ProjectHandler) Delete(c *gin.Context) { h.ResourceHandler.Delete(c) }

type TestimonialHandler struct {
	*ResourceHandler[model.Testimonial]
}

// Create godoc
//
//	@Summary		Create testimonial
//	@Tags			testimonial
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	schema.TestimonialInput	true	"payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Testimonial}
//	@Failure		400	{object}	serializer.Response
//	@Failure		500	{object}	serializer.Response
//	@Router			/testimonial/add-testimonial [post]
func (h TestimonialHandler) Create(c *gin.Context) { h.ResourceHandler.Create(c) }

// List godoc
//
//	@Summary		List testimonials
//	@Tags			testimonial
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]model.Testimonial}
//	@Failure		500	{object}	serializer.Response
//	@Router			/testimonial/get-testimonial [get]
func (h TestimonialHandler) List(c *gin.Context) { h.ResourceHandler.List(c) }

// Get godoc
//
//	@Summary		Get testimonial
//	@Tags			testimonial
//	@Produce		json
//	@Param			id	path	string	true	"Testimonial id"
//	@Success		200	{object}	serializer.Response{data=model.Testimonial}
//	@Failure		404	{object}	serializer.Response
//	@Router			/testimonial/get-testimonial-byid/{id} [get]
func (h TestimonialHandler) Get(c *gin.Context) { h.ResourceHandler.Get(c) }

// Update godoc
//
//	@Summary		Update testimonial
//	@Tags			testimonial
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Testimonial id"
//	@Param			payload	body	schema.TestimonialInput	true	"fields to write"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Testimonial}
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/testimonial/update-testimonial/{id} [put]
func (h TestimonialHandler) Update(c *gin.Context) { h.ResourceHandler.Update(c) }

// Delete godoc
//
//	@Summary		Delete testimonial
//	@Tags			testimonial
//	@Produce		json
//	@Param			id	path	string	true	"Testimonial id"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/testimonial/delete-testimonial/{id} [delete]
func (h TestimonialHandler) Delete(c *gin.Context) { h.ResourceHandler.Delete(c) }

type ContactHandler struct {
	*ResourceHandler[model.ContactSubmission]
}

// Create godoc
//
//	@Summary		Create contact
//	@Tags			contact-us
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	schema.ContactInput	true	"payload"
//	@Success		201	{object}	serializer.Response{data=model.ContactSubmission}
//	@Failure		400	{object}	serializer.Response
//	@Failure		500	{object}	serializer.Response
//	@Router			/contact-us/add-contact-us [post]
func (h ContactHandler) Create(c *gin.Context) { h.ResourceHandler.Create(c) }

// Save godoc
//
//	@Summary		Submit a lead from the public site
//	@Tags			contact-us
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	schema.ContactInput	true	"payload"
//	@Success		201	{object}	serializer.Response{data=model.ContactSubmission}
//	@Failure		400	{object}	serializer.Response
//	@Router			/contact-us/save-contact-us [post]
func (h ContactHandler) Save(c *gin.Context) { h.ResourceHandler.Create(c) }

// List godoc
//
//	@Summary		List contacts
//	@Tags			contact-us
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.ContactSubmission}
//	@Failure		500	{object}	serializer.Response
//	@Router			/contact-us/get-contact-us [get]
func (h ContactHandler) List(c *gin.Context) { h.ResourceHandler.List(c) }

// Get godoc
//
//	@Summary		Get contact
//	@Tags			contact-us
//	@Produce		json
//	@Param			id	path	string	true	"Contact id"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.ContactSubmission}
//	@Failure		404	{object}	serializer.Response
//	@Router			/contact-us/get-contact-us-byid/{id} [get]
func (h ContactHandler) Get(c *gin.Context) { h.ResourceHandler.Get(c) }

// Update godoc
//
//	@Summary		Update contact
//	@Tags			contact-us
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Contact id"
//	@Param			payload	body	schema.ContactPatch	true	"fields to write"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.ContactSubmission}
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/contact-us/update-contact-us/{id} [put]
func (h ContactHandler) Update(c *gin.Context) { h.ResourceHandler.Update(c) }

// Delete godoc
//
//	@Summary		Delete contact
//	@Tags			contact-us
//	@Produce		json
//	@Param			id	path	string	true	"Contact id"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/contact-us/delete-contact-us/{id} [delete]
func (h ContactHandler) Delete(c *gin.Context) { h.ResourceHandler.Delete(c) }
