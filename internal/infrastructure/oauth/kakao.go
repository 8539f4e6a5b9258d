package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"

	"github.com/storepulse/insight-api/internal/core/domain"
)

const kakaoUserInfoURL = "https://kapi.kakao.com/v2/user/me"

// kakaoEndpoint is Kakao's OAuth2 endpoint pair. Kakao is plain OAuth2
// with a proprietary user-info API, not OIDC.
var kakaoEndpoint = oauth2.Endpoint{
	AuthURL:  "https://kauth.kakao.com/oauth/authorize",
	TokenURL: "https://kauth.kakao.com/oauth/token",
}

// KakaoProvider exchanges an authorization code for the caller's Kakao
// profile. It satisfies ports.OAuthProvider.
type KakaoProvider struct {
	conf        *oauth2.Config
	userInfoURL string
}

type KakaoConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// UserInfoURL overrides the production endpoint, for tests.
	UserInfoURL string
}

func NewKakaoProvider(cfg KakaoConfig) *KakaoProvider {
	userInfoURL := cfg.UserInfoURL
	if userInfoURL == "" {
		userInfoURL = kakaoUserInfoURL
	}
	return &KakaoProvider{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     kakaoEndpoint,
		},
		userInfoURL: userInfoURL,
	}
}

type kakaoUserInfo struct {
	ID         int64 `json:"id"`
	Properties struct {
		Nickname     string `json:"nickname"`
		ProfileImage string `json:"profile_image"`
	} `json:"properties"`
}

func (p *KakaoProvider) Exchange(ctx context.Context, code string) (*domain.SocialProfile, error) {
	token, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("kakao code exchange: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("kakao user info request: %w", err)
	}

	resp, err := p.conf.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("kakao user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("kakao user info: status %d: %s", resp.StatusCode, body)
	}

	var info kakaoUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("kakao user info decode: %w", err)
	}
	if info.ID == 0 {
		return nil, fmt.Errorf("kakao user info: missing id")
	}

	return &domain.SocialProfile{
		Provider:      domain.ProviderKakao,
		SocialID:      strconv.FormatInt(info.ID, 10),
		Name:          info.Properties.Nickname,
		ProfileImgURL: info.Properties.ProfileImage,
	}, nil
}
