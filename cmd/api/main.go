package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sca-operations5/hostelapp-srikanth/internal/handler"
	"github.com/sca-operations5/hostelapp-srikanth/internal/kvstore"
	"github.com/sca-operations5/hostelapp-srikanth/internal/middleware"
	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/repository"
	"github.com/sca-operations5/hostelapp-srikanth/internal/service"
	"github.com/sca-operations5/hostelapp-srikanth/internal/ws"
	"github.com/sca-operations5/hostelapp-srikanth/pkg/database"
	"github.com/sca-operations5/hostelapp-srikanth/pkg/logger"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	zlog, err := logger.FromEnv()
	if err != nil {
		log.Fatal("logger init:", err)
	}
	defer zlog.Sync()

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.User{}, &model.Branch{}, &model.Staff{}, &model.Student{},
		&model.Complaint{}, &model.Meeting{}, &model.Room{})

	// 3. Seed branches and the default admin account
	seedBranchesAndAdmin(db, zlog)

	// 4. KV store for the log-style modules
	store := connectStore(zlog)

	// 5. WebSocket Hub
	wsHub := ws.NewHub(zlog)
	go wsHub.Run()

	// 6. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	branchRepo := repository.NewBranchRepo(db)
	studentRepo := repository.NewStudentRepo(db)
	staffRepo := repository.NewStaffRepo(db)
	complaintRepo := repository.NewComplaintRepo(db)
	meetingRepo := repository.NewMeetingRepo(db)
	roomRepo := repository.NewRoomRepo(db)

	authService := service.NewAuthService(userRepo, staffRepo, studentRepo, wsHub, zlog)
	rosterService := service.NewRosterService(studentRepo, staffRepo, branchRepo, roomRepo, wsHub)
	complaintService := service.NewComplaintService(complaintRepo, wsHub)
	meetingService := service.NewMeetingService(meetingRepo, wsHub)
	dashService := service.NewDashboardService(branchRepo, studentRepo, staffRepo, complaintRepo, store, zlog)

	authHandler := handler.NewAuthHandler(authService)
	rosterHandler := handler.NewRosterHandler(rosterService)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	meetingHandler := handler.NewMeetingHandler(meetingService)
	dashHandler := handler.NewDashboardHandler(dashService)
	branchHandler := handler.NewBranchHandler(branchRepo)
	leaveHandler := handler.NewLeaveHandler(store, wsHub)
	receptionHandler := handler.NewReceptionHandler(store, wsHub)
	healthHandler := handler.NewHealthHandler(store, wsHub)
	messHandler := handler.NewMessHandler(store, wsHub)
	attendanceHandler := handler.NewAttendanceHandler(store, studentRepo, wsHub)
	infraHandler := handler.NewInfrastructureHandler(store, branchRepo, wsHub)
	transportHandler := handler.NewTransportHandler(store, wsHub)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Hostel Administration API v1.0",
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestLogger(zlog))

	// 8. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/session", middleware.RequireAuth(userRepo), authHandler.GetSession)
	auth.Post("/logout", middleware.RequireAuth(userRepo), authHandler.Logout)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	staffOnly := middleware.RequireRoles(model.RoleAdmin, model.RoleWarden)
	wardenIncharge := middleware.RequireRoles(model.RoleAdmin, model.RoleWarden, model.RoleIncharge)
	messRoles := middleware.RequireRoles(model.RoleAdmin, model.RoleWarden, model.RoleMessIncharge)
	anyRole := middleware.RequireRoles(model.AnyRole...)

	// Account provisioning is admin territory
	protected.Post("/auth/register", middleware.RequireRoles(model.RoleAdmin), authHandler.Register)

	// Dashboard and branches
	protected.Get("/dashboard/stats", anyRole, dashHandler.GetStats)
	protected.Get("/branches", anyRole, branchHandler.GetBranches)
	protected.Get("/branches/floors", anyRole, branchHandler.GetFloors)

	// Student roster
	protected.Get("/students", staffOnly, rosterHandler.GetStudents)
	protected.Post("/students", staffOnly, rosterHandler.CreateStudent)
	protected.Put("/students/:id", staffOnly, rosterHandler.UpdateStudent)
	protected.Delete("/students/:id", staffOnly, rosterHandler.DeleteStudent)
	protected.Get("/students/export", staffOnly, rosterHandler.ExportStudents)

	// Staff roster
	protected.Get("/staff", staffOnly, rosterHandler.GetStaff)
	protected.Post("/staff", staffOnly, rosterHandler.CreateStaff)
	protected.Put("/staff/:id", staffOnly, rosterHandler.UpdateStaff)
	protected.Delete("/staff/:id", staffOnly, rosterHandler.DeleteStaff)
	protected.Get("/staff/export", staffOnly, rosterHandler.ExportStaff)

	// Rooms
	protected.Get("/rooms", staffOnly, rosterHandler.GetRooms)
	protected.Post("/rooms", staffOnly, rosterHandler.CreateRoom)
	protected.Patch("/students/:id/room", staffOnly, rosterHandler.AssignRoom)

	// Complaints
	protected.Get("/complaints", anyRole, complaintHandler.GetComplaints)
	protected.Post("/complaints", anyRole, complaintHandler.CreateComplaint)
	protected.Patch("/complaints/:id", wardenIncharge, complaintHandler.UpdateComplaint)
	protected.Get("/complaints/stats", anyRole, complaintHandler.GetComplaintStats)
	protected.Get("/complaints/export", anyRole, complaintHandler.ExportComplaints)

	// Meetings
	protected.Get("/meetings", staffOnly, meetingHandler.GetMeetings)
	protected.Post("/meetings", staffOnly, meetingHandler.CreateMeeting)
	protected.Delete("/meetings/:id", staffOnly, meetingHandler.DeleteMeeting)
	protected.Get("/meetings/export", staffOnly, meetingHandler.ExportMeetings)

	// Attendance
	protected.Get("/attendance", wardenIncharge, attendanceHandler.GetSheet)
	protected.Post("/attendance", wardenIncharge, attendanceHandler.MarkSheet)
	protected.Get("/attendance/export", wardenIncharge, attendanceHandler.ExportSheet)

	// Mess
	protected.Get("/mess/meals", anyRole, messHandler.GetMeals)
	protected.Post("/mess/meals", messRoles, messHandler.CreateMeal)
	protected.Put("/mess/meals/:id", messRoles, messHandler.UpdateMeal)
	protected.Delete("/mess/meals/:id", messRoles, messHandler.DeleteMeal)
	protected.Get("/mess/meals/export", messRoles, messHandler.ExportMeals)
	protected.Get("/mess/feedback", anyRole, messHandler.GetFeedback)
	protected.Post("/mess/feedback", anyRole, messHandler.CreateFeedback)
	protected.Get("/mess/feedback/export", anyRole, messHandler.ExportFeedback)

	// Leaves and outings
	protected.Get("/leaves", wardenIncharge, leaveHandler.GetLeaves)
	protected.Post("/leaves", anyRole, leaveHandler.CreateLeave)
	protected.Patch("/leaves/:id", wardenIncharge, leaveHandler.UpdateLeaveStatus)
	protected.Get("/leaves/export", wardenIncharge, leaveHandler.ExportLeaves)
	protected.Get("/outings", wardenIncharge, leaveHandler.GetOutings)
	protected.Post("/outings", anyRole, leaveHandler.CreateOuting)
	protected.Patch("/outings/:id", wardenIncharge, leaveHandler.UpdateOutingStatus)
	protected.Get("/outings/export", wardenIncharge, leaveHandler.ExportOutings)

	// Reception log
	protected.Get("/reception", wardenIncharge, receptionHandler.GetVisitors)
	protected.Post("/reception", wardenIncharge, receptionHandler.CreateVisitor)
	protected.Patch("/reception/:id/checkout", wardenIncharge, receptionHandler.CheckoutVisitor)
	protected.Get("/reception/export", wardenIncharge, receptionHandler.ExportVisitors)

	// Health log
	protected.Get("/health-records", wardenIncharge, healthHandler.GetRecords)
	protected.Post("/health-records", wardenIncharge, healthHandler.CreateRecord)
	protected.Get("/health-records/export", wardenIncharge, healthHandler.ExportRecords)

	// Infrastructure
	protected.Get("/infrastructure/export", staffOnly, infraHandler.ExportCounts)
	protected.Get("/infrastructure/:branchID", staffOnly, infraHandler.GetCounts)
	protected.Put("/infrastructure/:branchID", staffOnly, infraHandler.PutCounts)

	// Transport
	protected.Get("/transport/vehicles", staffOnly, transportHandler.GetVehicles)
	protected.Post("/transport/vehicles", staffOnly, transportHandler.CreateVehicle)
	protected.Patch("/transport/vehicles/:id/toggle", staffOnly, transportHandler.ToggleVehicle)
	protected.Get("/transport/vehicles/export", staffOnly, transportHandler.ExportVehicles)
	protected.Get("/transport/logs", staffOnly, transportHandler.GetLogs)
	protected.Post("/transport/logs", staffOnly, transportHandler.CreateLog)
	protected.Get("/transport/logs/export", staffOnly, transportHandler.ExportLogs)
	protected.Get("/transport/driver-attendance", staffOnly, transportHandler.GetDriverAttendance)
	protected.Post("/transport/driver-attendance", staffOnly, transportHandler.RecordDriverAttendance)
	protected.Get("/transport/driver-attendance/export", staffOnly, transportHandler.ExportDriverAttendance)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		tables := map[string]bool{}
		for _, t := range strings.Split(c.Query("tables"), ",") {
			if t = strings.TrimSpace(t); t != "" {
				tables[t] = true
			}
		}
		wsHub.Register <- &ws.Client{Conn: c, Tables: tables}
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}
	zlog.Info("server exited")
}

func requestLogger(zlog *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		zlog.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}

// connectStore picks Redis when REDIS_ADDR is set, otherwise an in-process
// map. The memory store loses data on restart and only suits development.
func connectStore(zlog *zap.Logger) kvstore.Store {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		zlog.Warn("REDIS_ADDR not set, using in-memory store")
		return kvstore.NewMemoryStore()
	}
	db := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			db = n
		}
	}
	store := kvstore.NewRedisStore(addr, os.Getenv("REDIS_PASSWORD"), db)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		zlog.Fatal("redis unreachable", zap.String("addr", addr), zap.Error(err))
	}
	zlog.Info("connected to redis", zap.String("addr", addr))
	return store
}

// seedBranchesAndAdmin creates the fixed branch list and a default admin
// account if they don't exist. The admin needs both a login row and a staff
// profile; without the profile the session would resolve to guest.
func seedBranchesAndAdmin(db *gorm.DB, zlog *zap.Logger) {
	branchRepo := repository.NewBranchRepo(db)
	userRepo := repository.NewUserRepo(db)
	staffRepo := repository.NewStaffRepo(db)

	if err := branchRepo.SeedDefaults(); err != nil {
		zlog.Warn("failed to seed branches", zap.Error(err))
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}

	if _, err := userRepo.FindByEmail(adminEmail); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
		zlog.Warn("ADMIN_PASSWORD not set, using default", zap.String("email", adminEmail))
	}

	admin := &model.User{Email: adminEmail, IsActive: true}
	if err := admin.SetPassword(password); err != nil {
		zlog.Error("failed to hash admin password", zap.Error(err))
		return
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"
	if err := userRepo.Create(admin); err != nil {
		zlog.Error("failed to create admin user", zap.Error(err))
		return
	}

	if _, err := staffRepo.FindByEmail(adminEmail); err != nil {
		profile := &model.Staff{
			StaffID: "ADM-001",
			Name:    "Administrator",
			Email:   adminEmail,
			Branch:  model.DefaultBranches[0].Name,
			Role:    model.RoleAdmin,
		}
		profile.CreatedBy = "system"
		profile.UpdatedBy = "system"
		if err := staffRepo.Create(profile); err != nil {
			zlog.Error("failed to create admin staff profile", zap.Error(err))
			return
		}
	}
	zlog.Info("seeded default admin account", zap.String("email", adminEmail))
}
