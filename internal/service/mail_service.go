package service

import "Community_API/internal/pkg"

type MailService struct {
	cfg  pkg.SMTPConfig
	send func(cfg pkg.SMTPConfig, to, subject, html string) error
}

func NewMailService(cfg pkg.SMTPConfig) *MailService {
	return &MailService{cfg: cfg, send: pkg.SendEmail}
}

// SendWelcome 注册成功后的欢迎邮件
func (s *MailService) SendWelcome(to, name string) error {
	return s.send(s.cfg, to, "Welcome to the community", pkg.WelcomeHTML(name))
}
