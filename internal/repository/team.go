package repository

import (
	"project-intake-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Membership records which team a student already belongs to
type Membership struct {
	USN      string
	TeamID   uint
	TeamName string
}

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create inserts the team and then its members in order. Associations are written
// explicitly so a unique violation on a member surfaces instead of being skipped.
func (r *TeamRepository) Create(team *models.Team) error {
	if err := r.db.Omit(clause.Associations).Create(team).Error; err != nil {
		return err
	}
	if len(team.Members) == 0 {
		return nil
	}
	for i := range team.Members {
		team.Members[i].TeamID = team.TeamID
		team.Members[i].Position = i
	}
	return r.db.Create(&team.Members).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "team_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "team_name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithMembers retrieves a team with its ordered members and its project
func (r *TeamRepository) GetWithMembers(id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Project").
		Preload("Project.Mentor").
		First(&team, "team_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves teams with pagination
func (r *TeamRepository) GetAll(limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	if err := r.db.Model(&models.Team{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("team_id ASC").Limit(limit).Offset(offset).Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// FindMemberships returns the existing team of every USN in usns that is already on one
func (r *TeamRepository) FindMemberships(usns []string) ([]Membership, error) {
	var memberships []Membership
	if len(usns) == 0 {
		return memberships, nil
	}
	err := r.db.Model(&models.TeamMember{}).
		Select("team_members.usn AS usn, teams.team_id AS team_id, teams.team_name AS team_name").
		Joins("JOIN teams ON teams.team_id = team_members.team_id").
		Where("team_members.usn IN ?", usns).
		Order("team_members.usn ASC").
		Scan(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}
