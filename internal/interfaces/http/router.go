package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WorkflowUC   *fulfillment.WorkflowUseCase
	ImageIssueUC *fulfillment.ImageIssueUseCase
	ShelfUC      *fulfillment.ShelfUseCase
	DocumentUC   *fulfillment.DocumentUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Todo fulfillment exige Bearer Token: cada acción se atribuye a un operario.
	ff := api.Group("/fulfillment", AuthMiddleware(deps.JWTSecret))

	wf := NewFulfillmentHandler(deps.WorkflowUC)
	docs := NewDocumentHandler(deps.DocumentUC)
	ff.Get("/orders", wf.Overview)
	ff.Get("/orders/:order", wf.Detail)
	ff.Post("/orders/:order/start", wf.Start)
	ff.Patch("/orders/:order/items/:lineKey", wf.UpdateItem)
	ff.Post("/orders/:order/dispatch", wf.Dispatch)
	ff.Get("/orders/:order/delivery-notes", docs.ListByOrder)
	ff.Post("/status-map", wf.StatusMap)

	ff.Get("/delivery-notes/:documentNo/pdf", docs.PDF)
	ff.Get("/delivery-notes/:documentNo/xml", docs.XML)

	issues := NewImageIssueHandler(deps.ImageIssueUC)
	ff.Post("/image-issues", issues.Report)
	ff.Get("/image-issues", issues.List)
	ff.Patch("/image-issues/:id", issues.UpdateStatus)

	shelves := NewShelfHandler(deps.ShelfUC)
	ff.Get("/shelves", shelves.List)
	ff.Get("/shelves/:productCode", shelves.Get)
	ff.Put("/shelves/:productCode", shelves.Upsert)
	ff.Delete("/shelves/:productCode", shelves.Delete)
}
