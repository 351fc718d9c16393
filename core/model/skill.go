package model

import "fmt"

// SkillType identifies one of the five production roles an employee may hold.
type SkillType string

const (
	SkillProducer         SkillType = "Producer"
	SkillEditor           SkillType = "Editor"
	SkillGraphicsDesigner SkillType = "Graphics Designer"
	SkillColorist         SkillType = "Colorist"
	SkillAudioEngineer    SkillType = "Audio Engineer"
)

// AllSkills returns the five production roles in canonical order.
func AllSkills() []SkillType {
	return []SkillType{
		SkillProducer,
		SkillEditor,
		SkillGraphicsDesigner,
		SkillColorist,
		SkillAudioEngineer,
	}
}

// ParseSkill converts a string into a known SkillType.
func ParseSkill(s string) (SkillType, error) {
	for _, skill := range AllSkills() {
		if string(skill) == s {
			return skill, nil
		}
	}
	return "", fmt.Errorf("unknown skill %q", s)
}

// ProjectStatus tracks the lifecycle of a project.
type ProjectStatus string

const (
	StatusPending    ProjectStatus = "Pending"
	StatusScheduled  ProjectStatus = "Scheduled"
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
	StatusCancelled  ProjectStatus = "Cancelled"
)

// ParseStatus converts a string into a known ProjectStatus.
func ParseStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(s) {
	case StatusPending, StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return ProjectStatus(s), nil
	}
	return "", fmt.Errorf("unknown project status %q", s)
}
