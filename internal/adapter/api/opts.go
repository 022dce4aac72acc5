package api

import (
	"log/slog"
	"net"
	"strconv"

	adminservice "github.com/mmsswimming/go_academy_backend/internal/app/admin"
	"github.com/mmsswimming/go_academy_backend/internal/app/auth"
	catalogservice "github.com/mmsswimming/go_academy_backend/internal/app/catalog"
	contentservice "github.com/mmsswimming/go_academy_backend/internal/app/content"
	enrollmentservice "github.com/mmsswimming/go_academy_backend/internal/app/enrollment"
	memberservice "github.com/mmsswimming/go_academy_backend/internal/app/members"
)

type Option func(*Server)

func Addr(host string, port int) Option {
	return func(s *Server) {
		s.addr = net.JoinHostPort(host, strconv.Itoa(port))
	}
}

func Logger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

func AuthService(service *auth.Service) Option {
	return func(s *Server) {
		s.authService = service
	}
}

func MemberService(service *memberservice.Service) Option {
	return func(s *Server) {
		s.memberService = service
	}
}

func CatalogService(service *catalogservice.Service) Option {
	return func(s *Server) {
		s.catalogService = service
	}
}

func EnrollmentService(service *enrollmentservice.Service) Option {
	return func(s *Server) {
		s.enrollmentService = service
	}
}

func ContentService(service *contentservice.Service) Option {
	return func(s *Server) {
		s.contentService = service
	}
}

func AdminService(service *adminservice.Service) Option {
	return func(s *Server) {
		s.adminService = service
	}
}
