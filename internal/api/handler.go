package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"trackflow/config"
	"trackflow/internal/models"
	"trackflow/internal/service"
	"trackflow/internal/store"
	"trackflow/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	leads     *service.LeadService
	orders    *service.OrderService
	reminders *service.ReminderService
	documents *service.DocumentService
	dashboard *service.DashboardService
	cfg       *config.Config
}

// NewHandler creates a new HTTP handler
func NewHandler(
	leads *service.LeadService,
	orders *service.OrderService,
	reminders *service.ReminderService,
	documents *service.DocumentService,
	dashboard *service.DashboardService,
	cfg *config.Config,
) *Handler {
	return &Handler{
		leads:     leads,
		orders:    orders,
		reminders: reminders,
		documents: documents,
		dashboard: dashboard,
		cfg:       cfg,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	// When credentials are used, specific origins must be provided (not *)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     h.cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded content is served straight off disk
	router.Static("/uploads", h.cfg.Uploads.Dir)

	api := router.Group("/api")
	{
		api.GET("/leads", h.listLeads)
		api.GET("/leads/:id", h.getLead)
		api.POST("/leads", h.createLead)
		api.PUT("/leads/:id", h.updateLead)
		api.DELETE("/leads/:id", h.deleteLead)

		api.GET("/orders", h.listOrders)
		api.GET("/orders/:id", h.getOrder)
		api.POST("/orders", h.createOrder)
		api.PUT("/orders/:id", h.updateOrder)
		api.DELETE("/orders/:id", h.deleteOrder)

		api.GET("/reminders", h.listReminders)
		api.POST("/reminders", h.createReminder)
		api.PUT("/reminders/:id", h.updateReminder)
		api.DELETE("/reminders/:id", h.deleteReminder)

		api.POST("/upload/:entity_type/:entity_id", h.uploadDocument)
		api.GET("/documents/:entity_type/:entity_id", h.listDocuments)
		api.DELETE("/documents/:id", h.deleteDocument)

		api.GET("/dashboard", h.getDashboard)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// listLeads handles listing all leads
func (h *Handler) listLeads(c *gin.Context) {
	leads, err := h.leads.ListLeads(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leads)
}

// getLead handles get lead by ID
func (h *Handler) getLead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	lead, err := h.leads.GetLead(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// createLead handles lead creation
func (h *Handler) createLead(c *gin.Context) {
	var req service.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	lead, err := h.leads.CreateLead(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// updateLead handles full-replacement lead updates
func (h *Handler) updateLead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req service.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	lead, err := h.leads.UpdateLead(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// deleteLead handles lead deletion
func (h *Handler) deleteLead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.leads.DeleteLead(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted successfully"})
}

// listOrders handles listing all orders
func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// getOrder handles get order by ID
func (h *Handler) getOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// createOrder handles order creation
func (h *Handler) createOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// updateOrder handles partial order updates
func (h *Handler) updateOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var upd models.OrderUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	order, err := h.orders.UpdateOrder(c.Request.Context(), id, &upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// deleteOrder handles order deletion
func (h *Handler) deleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

// listReminders handles listing all reminders
func (h *Handler) listReminders(c *gin.Context) {
	reminders, err := h.reminders.ListReminders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}

// createReminder handles reminder creation
func (h *Handler) createReminder(c *gin.Context) {
	var req service.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	reminder, err := h.reminders.CreateReminder(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reminder)
}

// updateReminder handles partial reminder updates
func (h *Handler) updateReminder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var upd models.ReminderUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	reminder, err := h.reminders.UpdateReminder(c.Request.Context(), id, &upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminder)
}

// deleteReminder handles reminder deletion
func (h *Handler) deleteReminder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.reminders.DeleteReminder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}

// uploadDocument handles multipart file uploads for a lead or an order
func (h *Handler) uploadDocument(c *gin.Context) {
	entityID, ok := pathID(c, "entity_id")
	if !ok {
		return
	}
	entityType := c.Param("entity_type")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing file",
			"details": err.Error(),
		})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Unreadable file",
			"details": err.Error(),
		})
		return
	}
	defer src.Close()

	_, name, err := h.documents.AttachDocument(
		c.Request.Context(), entityType, entityID, fileHeader.Filename, src)
	if err != nil {
		respondError(c, err)
		return
	}

	util.UploadSizeBytes.Observe(float64(fileHeader.Size))
	c.JSON(http.StatusOK, gin.H{
		"message":  "File uploaded successfully",
		"filename": name,
	})
}

// listDocuments handles listing documents for a lead or an order
func (h *Handler) listDocuments(c *gin.Context) {
	entityID, ok := pathID(c, "entity_id")
	if !ok {
		return
	}

	docs, err := h.documents.ListDocuments(c.Request.Context(), c.Param("entity_type"), entityID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// deleteDocument handles document deletion
func (h *Handler) deleteDocument(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.documents.DeleteDocument(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}

// getDashboard handles the dashboard snapshot
func (h *Handler) getDashboard(c *gin.Context) {
	stats, err := h.dashboard.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// pathID parses a numeric path parameter, writing a 400 on failure
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidStage), errors.Is(err, service.ErrInvalidEntityType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"details": err.Error(),
		})
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
