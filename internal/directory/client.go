// Package directory вызывает внешние User и Team API для проверки
// ссылочной целостности членств. Клиент синхронный, без ретраев:
// политика повторов - забота вызывающей стороны.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/bagdasarian/role-membership-service/internal/domain"
)

type Client interface {
	// FindUserByID возвращает (nil, nil), если пользователь не существует.
	FindUserByID(ctx context.Context, id string) (*domain.DirectoryUser, error)
	// FindTeamByID возвращает (nil, nil), если команда не существует.
	FindTeamByID(ctx context.Context, id string) (*domain.DirectoryTeam, error)
}

type httpClient struct {
	client      *http.Client
	userBaseURL string
	teamBaseURL string
}

// NewHTTPClient создает клиент внешних справочников поверх net/http.
func NewHTTPClient(userBaseURL, teamBaseURL string, timeout time.Duration) Client {
	return &httpClient{
		client:      &http.Client{Timeout: timeout},
		userBaseURL: userBaseURL,
		teamBaseURL: teamBaseURL,
	}
}

func (c *httpClient) FindUserByID(ctx context.Context, id string) (*domain.DirectoryUser, error) {
	user := &domain.DirectoryUser{}
	found, err := c.getJSON(ctx, c.userBaseURL, id, user, domain.MsgUserAPIFindByIDHelp)
	if err != nil || !found {
		return nil, err
	}
	return user, nil
}

func (c *httpClient) FindTeamByID(ctx context.Context, id string) (*domain.DirectoryTeam, error) {
	team := &domain.DirectoryTeam{}
	found, err := c.getJSON(ctx, c.teamBaseURL, id, team, domain.MsgTeamAPIFindByIDHelp)
	if err != nil || !found {
		return nil, err
	}
	return team, nil
}

// getJSON выполняет GET {baseURL}/{id} и декодирует тело в out.
// 404 означает "не найдено" и ошибкой не является; любой транспортный
// сбой или неожиданный статус оборачивается в доменную ошибку с ключом
// подсказки конкретной операции.
func (c *httpClient) getJSON(ctx context.Context, baseURL, id string, out any, helpKey string) (bool, error) {
	requestURL := baseURL + "/" + url.PathEscape(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return false, domain.NewUnexpectedError(err, helpKey, id)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, domain.NewUnexpectedError(err, helpKey, id)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, domain.NewUnexpectedError(err, helpKey, id)
		}
		return true, nil
	default:
		err := fmt.Errorf("unexpected status %d from %s", resp.StatusCode, requestURL)
		return false, domain.NewUnexpectedError(err, helpKey, id)
	}
}
