package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sca-operations5/hostelapp-srikanth/internal/kvstore"
	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/repository"
)

// StatCard is one dashboard summary card.
type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// DashboardStats is the full dashboard payload: the fixed-order main cards
// plus the per-status complaint tally.
type DashboardStats struct {
	Cards      []StatCard           `json:"cards"`
	Complaints model.ComplaintStats `json:"complaints"`
}

// InfraTotals are the inventory sums across all branches.
type InfraTotals struct {
	Rooms    int
	Beds     int
	Capacity int
}

type DashboardService interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	branchRepo    repository.BranchRepository
	studentRepo   repository.StudentRepository
	staffRepo     repository.StaffRepository
	complaintRepo repository.ComplaintRepository
	store         kvstore.Store
	log           *zap.Logger
}

func NewDashboardService(branchRepo repository.BranchRepository, studentRepo repository.StudentRepository,
	staffRepo repository.StaffRepository, complaintRepo repository.ComplaintRepository,
	store kvstore.Store, log *zap.Logger) DashboardService {
	return &dashboardService{
		branchRepo:    branchRepo,
		studentRepo:   studentRepo,
		staffRepo:     staffRepo,
		complaintRepo: complaintRepo,
		store:         store,
		log:           log,
	}
}

// ComputeStats is the pure aggregation behind the dashboard: fixed card
// order, no side effects. Exposed for direct use and testing.
func ComputeStats(branchCount int, infra InfraTotals, studentCount, staffCount int64) []StatCard {
	return []StatCard{
		{Title: "Total Students", Value: fmt.Sprintf("%d", studentCount), Icon: "users", Color: "bg-blue-500"},
		{Title: "Total Staff", Value: fmt.Sprintf("%d", staffCount), Icon: "users", Color: "bg-purple-500"},
		{Title: "Total Capacity", Value: fmt.Sprintf("%d", infra.Capacity), Icon: "home", Color: "bg-teal-500"},
		{Title: "Total Branches", Value: fmt.Sprintf("%d", branchCount), Icon: "building", Color: "bg-green-500"},
		{Title: "Total Rooms", Value: fmt.Sprintf("%d", infra.Rooms), Icon: "door-closed", Color: "bg-yellow-500"},
		{Title: "Total Beds", Value: fmt.Sprintf("%d", infra.Beds), Icon: "bed-double", Color: "bg-pink-500"},
	}
}

// GetStats gathers every input count and aggregates. A failed fetch
// degrades that figure to zero and the dashboard still renders; nothing
// here propagates a failure to the caller.
func (s *dashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	var branches []model.Branch
	branches, err := s.branchRepo.FindAll()
	if err != nil {
		s.log.Warn("dashboard: branch fetch failed", zap.Error(err))
		branches = nil
	}

	var infra InfraTotals
	for _, b := range branches {
		doc, ok, err := kvstore.GetDocument[model.Infrastructure](ctx, s.store, InfraKey(b.ID))
		if err != nil {
			s.log.Warn("dashboard: infrastructure fetch failed", zap.Uint("branch_id", b.ID), zap.Error(err))
			continue
		}
		if !ok {
			continue
		}
		infra.Rooms += doc.Rooms
		infra.Beds += doc.Beds
		infra.Capacity += doc.StudentCapacity
	}

	studentCount, err := s.studentRepo.Count()
	if err != nil {
		s.log.Warn("dashboard: student count failed", zap.Error(err))
		studentCount = 0
	}
	staffCount, err := s.staffRepo.Count()
	if err != nil {
		s.log.Warn("dashboard: staff count failed", zap.Error(err))
		staffCount = 0
	}

	complaints := model.ComplaintStats{}
	if cs, err := s.complaintRepo.CountByStatus(); err != nil {
		s.log.Warn("dashboard: complaint tally failed", zap.Error(err))
	} else {
		complaints = *cs
	}

	return &DashboardStats{
		Cards:      ComputeStats(len(branches), infra, studentCount, staffCount),
		Complaints: complaints,
	}, nil
}

// InfraKey is the KV document key for a branch's infrastructure counts.
func InfraKey(branchID uint) string {
	return fmt.Sprintf("infra:%d", branchID)
}
