package v1

import (
	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_system/internal/models"
)

func coordinatesToModel(dto *CoordinatesDTO) *models.Coordinates {
	if dto == nil || dto.Lat == nil || dto.Lng == nil {
		return nil
	}
	return &models.Coordinates{Lat: *dto.Lat, Lng: *dto.Lng}
}

// DTOToAlertModel преобразует запрос создания в доменную модель; creatorID уже разобран
func DTOToAlertModel(dto CreateAlertRequest, creatorID uuid.UUID) *models.Alert {
	alert := &models.Alert{
		Address:   dto.Address,
		CreatorID: creatorID,
		Detail:    dto.Detail,
		Evidence:  dto.Evidence,
	}
	if dto.Timestamp != nil {
		alert.Timestamp = dto.Timestamp.UTC()
	}
	if c := coordinatesToModel(dto.Location); c != nil {
		alert.Location = *c
	}
	if p := dto.PostalAddress; p != nil {
		alert.PostalAddress = models.PostalAddress{
			Street:       p.Street,
			Neighborhood: p.Neighborhood,
			City:         p.City,
			State:        p.State,
			Country:      p.Country,
			PostalCode:   p.PostalCode,
		}
	}
	return alert
}

// DTOToStatusUpdate преобразует запрос перехода статуса
func DTOToStatusUpdate(dto UpdateStatusRequest) models.StatusUpdate {
	update := models.StatusUpdate{
		Status:          dto.Status,
		Origin:          coordinatesToModel(dto.Origin),
		Destination:     coordinatesToModel(dto.Destination),
		ResolutionNotes: dto.ResolutionNotes,
		EvidenceURL:     dto.EvidenceURL,
	}
	if dto.HandlerID != "" {
		if id, err := uuid.Parse(dto.HandlerID); err == nil {
			update.HandlerID = &id
		}
	}
	return update
}

func summaryToResponse(s *models.UserSummary) *UserSummaryResponse {
	if s == nil {
		return nil
	}
	return &UserSummaryResponse{
		ID:       s.ID,
		Username: s.Username,
		FullName: s.FullName,
		Email:    s.Email,
		Phone:    s.Phone,
	}
}

// ModelToAlertResponse преобразует доменную модель в DTO для ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	resp := &AlertResponse{
		ID:              model.ID,
		Address:         model.Address,
		CreatorID:       model.CreatorID,
		Timestamp:       model.Timestamp,
		Detail:          model.Detail,
		Status:          string(model.Status),
		Visible:         model.Visible,
		HandlerID:       model.HandlerID,
		Evidence:        model.Evidence,
		ResolutionNotes: model.ResolutionNotes,
		Location:        CoordinatesResponse{Lat: model.Location.Lat, Lng: model.Location.Lng},
		PostalAddress: PostalAddressDTO{
			Street:       model.PostalAddress.Street,
			Neighborhood: model.PostalAddress.Neighborhood,
			City:         model.PostalAddress.City,
			State:        model.PostalAddress.State,
			Country:      model.PostalAddress.Country,
			PostalCode:   model.PostalAddress.PostalCode,
		},
		Creator:   summaryToResponse(model.Creator),
		Handler:   summaryToResponse(model.Handler),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
	if resp.Evidence == nil {
		resp.Evidence = []string{}
	}
	if r := model.Route; r != nil {
		resp.Route = &RouteResponse{
			Origin:      CoordinatesResponse{Lat: r.Origin.Lat, Lng: r.Origin.Lng},
			Destination: CoordinatesResponse{Lat: r.Destination.Lat, Lng: r.Destination.Lng},
		}
	}
	return resp
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(models []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

func ModelToNotificationResponse(model *models.Notification) *NotificationResponse {
	if model == nil {
		return nil
	}
	readBy := model.ReadBy
	if readBy == nil {
		readBy = []uuid.UUID{}
	}
	return &NotificationResponse{
		ID:        model.ID,
		AlertID:   model.AlertID,
		Message:   model.Message,
		ReadBy:    readBy,
		Type:      string(model.Type),
		CreatedAt: model.CreatedAt,
	}
}

func ModelsToNotificationResponses(models []*models.Notification) []*NotificationResponse {
	responses := make([]*NotificationResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToNotificationResponse(model)
	}
	return responses
}

// DTOToContactModel - флаг уведомлений по умолчанию включен
func DTOToContactModel(dto CreateContactRequest, ownerID uuid.UUID) *models.Contact {
	enabled := true
	if dto.NotificationsEnabled != nil {
		enabled = *dto.NotificationsEnabled
	}
	return &models.Contact{
		OwnerID:              ownerID,
		FirstName:            dto.FirstName,
		LastName:             dto.LastName,
		Phone:                dto.Phone,
		Email:                dto.Email,
		Relationship:         dto.Relationship,
		NotificationsEnabled: enabled,
	}
}

func UpdateDTOToContactModel(dto UpdateContactRequest, id uuid.UUID) *models.Contact {
	return &models.Contact{
		ID:           id,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Phone:        dto.Phone,
		Email:        dto.Email,
		Relationship: dto.Relationship,
	}
}

func ModelToContactResponse(model *models.Contact) *ContactResponse {
	return &ContactResponse{
		ID:                   model.ID,
		OwnerID:              model.OwnerID,
		FirstName:            model.FirstName,
		LastName:             model.LastName,
		Phone:                model.Phone,
		Email:                model.Email,
		Relationship:         model.Relationship,
		NotificationsEnabled: model.NotificationsEnabled,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
}

func ModelsToContactResponses(models []*models.Contact) []*ContactResponse {
	responses := make([]*ContactResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToContactResponse(model)
	}
	return responses
}

// DTOToUserModel преобразует запросы регистрации и создания; роль задает сервис
func DTOToUserModel(dto any) *models.User {
	switch v := dto.(type) {
	case RegisterRequest:
		return &models.User{
			Username: v.Username,
			FullName: v.FullName,
			Email:    v.Email,
			Phone:    v.Phone,
			Address:  v.Address,
			Gender:   models.Gender(v.Gender),
		}
	case CreateUserRequest:
		return &models.User{
			Username: v.Username,
			FullName: v.FullName,
			Email:    v.Email,
			Phone:    v.Phone,
			Address:  v.Address,
			Gender:   models.Gender(v.Gender),
			Role:     models.Role(v.Role),
		}
	}
	return nil
}

func DTOToUserUpdate(dto UpdateUserRequest) models.UserUpdate {
	update := models.UserUpdate{
		Username: dto.Username,
		FullName: dto.FullName,
		Email:    dto.Email,
		Phone:    dto.Phone,
		Address:  dto.Address,
		Active:   dto.Active,
	}
	if dto.Gender != nil {
		gender := models.Gender(*dto.Gender)
		update.Gender = &gender
	}
	if dto.Role != nil {
		role := models.Role(*dto.Role)
		update.Role = &role
	}
	return update
}

// ModelToUserResponse преобразует пользователя в ответ без хеша пароля
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:        model.ID,
		Username:  model.Username,
		FullName:  model.FullName,
		Email:     model.Email,
		Phone:     model.Phone,
		Address:   model.Address,
		Gender:    string(model.Gender),
		Role:      string(model.Role),
		Active:    model.Active,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ModelsToUserResponses(models []*models.User) []*UserResponse {
	responses := make([]*UserResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToUserResponse(model)
	}
	return responses
}
