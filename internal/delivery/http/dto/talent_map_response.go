package dto

import "talent-map/internal/repository"

type SkillDistributionEntry struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type LanguageDistributionEntry struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type TalentMapResponse struct {
	TotalUsers            int64                       `json:"total_users"`
	TotalSkills           int64                       `json:"total_skills"`
	TotalLanguages        int64                       `json:"total_languages"`
	TotalProjects         int64                       `json:"total_projects"`
	VerifiedUsersCount    int64                       `json:"verified_users_count"`
	SkillsDistribution    []SkillDistributionEntry    `json:"skills_distribution"`
	LanguagesDistribution []LanguageDistributionEntry `json:"languages_distribution"`
}

func FromTalentMapStats(s repository.TalentMapStats) TalentMapResponse {
	skills := make([]SkillDistributionEntry, 0, len(s.SkillsDistribution))
	for _, e := range s.SkillsDistribution {
		skills = append(skills, SkillDistributionEntry{Name: e.Name, Category: e.Category, Count: e.Count})
	}
	langs := make([]LanguageDistributionEntry, 0, len(s.LanguagesDistribution))
	for _, e := range s.LanguagesDistribution {
		langs = append(langs, LanguageDistributionEntry{Name: e.Name, Count: e.Count})
	}
	return TalentMapResponse{
		TotalUsers:            s.TotalUsers,
		TotalSkills:           s.TotalSkills,
		TotalLanguages:        s.TotalLanguages,
		TotalProjects:         s.TotalProjects,
		VerifiedUsersCount:    s.VerifiedUsersCount,
		SkillsDistribution:    skills,
		LanguagesDistribution: langs,
	}
}
