package domain

import "time"

type Certificate struct {
	ID        int64     `json:"id"`
	GirlID    int64     `json:"girl_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

type CertificateResponse struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}

type CertificateLookupResponse struct {
	Found    bool   `json:"found"`
	GirlName string `json:"girl_name,omitempty"`
}
