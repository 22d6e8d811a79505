package persistent

import (
	"skillsphere/internal/entity"
	"skillsphere/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:         m.ID.Hex(),
		UserID:     m.UserID,
		Content:    m.Content,
		MediaIDs:   m.MediaIDs,
		MediaTypes: m.MediaTypes,
		ImageURLs:  m.ImageURLs,
		VideoURL:   m.VideoURL,
		Likes:      m.Likes,
		Comments:   m.Comments,
		CreatedAt:  m.CreatedAt,
	}
}

func ToPostModel(e *entity.Post) (*model.PostModel, error) {
	if e == nil {
		return nil, nil
	}

	m := &model.PostModel{
		UserID:     e.UserID,
		Content:    e.Content,
		MediaIDs:   e.MediaIDs,
		MediaTypes: e.MediaTypes,
		ImageURLs:  e.ImageURLs,
		VideoURL:   e.VideoURL,
		Likes:      e.Likes,
		Comments:   e.Comments,
		CreatedAt:  e.CreatedAt,
	}

	if e.ID != "" {
		oid, err := primitive.ObjectIDFromHex(e.ID)
		if err != nil {
			return nil, err
		}
		m.ID = oid
	}

	return m, nil
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID.Hex(),
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Password:  m.Password,
		AvatarURL: m.AvatarURL,
		Role:      entity.UserRole(m.Role),
		CreatedAt: m.CreatedAt,
	}
}

func ToUserModel(e *entity.User) (*model.UserModel, error) {
	if e == nil {
		return nil, nil
	}

	m := &model.UserModel{
		Email:     e.Email,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Password:  e.Password,
		AvatarURL: e.AvatarURL,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
	}

	if e.ID != "" {
		oid, err := primitive.ObjectIDFromHex(e.ID)
		if err != nil {
			return nil, err
		}
		m.ID = oid
	}

	return m, nil
}

func ToGroupEntity(m *model.GroupModel) *entity.Group {
	if m == nil {
		return nil
	}

	return &entity.Group{
		ID:            m.ID.Hex(),
		Name:          m.Name,
		Description:   m.Description,
		CreatedBy:     m.CreatedBy,
		CoverMediaID:  m.CoverMediaID,
		CoverImageURL: m.CoverImageURL,
		CreatedAt:     m.CreatedAt,
	}
}

func ToGroupModel(e *entity.Group) (*model.GroupModel, error) {
	if e == nil {
		return nil, nil
	}

	m := &model.GroupModel{
		Name:          e.Name,
		Description:   e.Description,
		CreatedBy:     e.CreatedBy,
		CoverMediaID:  e.CoverMediaID,
		CoverImageURL: e.CoverImageURL,
		CreatedAt:     e.CreatedAt,
	}

	if e.ID != "" {
		oid, err := primitive.ObjectIDFromHex(e.ID)
		if err != nil {
			return nil, err
		}
		m.ID = oid
	}

	return m, nil
}

func ToPlanEntity(m *model.PlanModel) *entity.LearningPlan {
	if m == nil {
		return nil
	}

	return &entity.LearningPlan{
		ID:          m.ID.Hex(),
		Title:       m.Title,
		Description: m.Description,
		Topics:      m.Topics,
		Deadline:    m.Deadline,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
	}
}

func ToPlanModel(e *entity.LearningPlan) (*model.PlanModel, error) {
	if e == nil {
		return nil, nil
	}

	m := &model.PlanModel{
		Title:       e.Title,
		Description: e.Description,
		Topics:      e.Topics,
		Deadline:    e.Deadline,
		UserID:      e.UserID,
		CreatedAt:   e.CreatedAt,
	}

	if e.ID != "" {
		oid, err := primitive.ObjectIDFromHex(e.ID)
		if err != nil {
			return nil, err
		}
		m.ID = oid
	}

	return m, nil
}
