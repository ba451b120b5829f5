package gitea

import (
	"context"
	"net/http"

	entity "github.com/Kargones/gitea-vcs/internal/entity/gitea"
)

// GetOrganizations возвращает организации текущего пользователя (GET /user/orgs, 200).
func (h *Handler) GetOrganizations(ctx context.Context, opts ListOptions) ([]entity.Organization, error) {
	resp, err := h.api.do(ctx, request{
		operation: "GetOrganizations",
		method:    http.MethodGet,
		path:      "/user/orgs",
		query:     opts.values(),
		expect:    http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return decodeList(resp, h.strict, entity.SchemaOrganization, entity.ParseOrganization)
}

// GetTeams возвращает команды текущего пользователя во всех организациях (GET /user/teams, 200).
func (h *Handler) GetTeams(ctx context.Context, opts ListOptions) ([]entity.Team, error) {
	resp, err := h.api.do(ctx, request{
		operation: "GetTeams",
		method:    http.MethodGet,
		path:      "/user/teams",
		query:     opts.values(),
		expect:    http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return decodeList(resp, h.strict, entity.SchemaTeam, entity.ParseTeam)
}
