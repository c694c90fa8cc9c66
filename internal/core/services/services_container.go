package services

import (
	portsproviders "github.com/smbanking/onboarding_backend/internal/core/ports/providers"
	portsrepo "github.com/smbanking/onboarding_backend/internal/core/ports/repositories"
	portssvc "github.com/smbanking/onboarding_backend/internal/core/ports/services"
	"github.com/smbanking/onboarding_backend/internal/platform/metrics"
)

// ProviderSet bundles the external collaborators injected into the services.
type ProviderSet struct {
	Verification portsproviders.VerificationProvider
	Bureau       portsproviders.BureauProvider
	Notifier     portsproviders.NotificationSink
}

// NewServiceContainer wires every service with its repositories and providers.
func NewServiceContainer(repos portsrepo.RepositoryProvider, providers ProviderSet, m *metrics.Metrics) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Checking:     NewCheckingService(repos.CheckingRepo, m),
		Verification: NewVerificationService(repos.CheckingRepo, providers.Verification, m),
		Lending:      NewLendingService(repos.LendingRepo, providers.Bureau, m),
		Notification: NewNotificationService(repos.CheckingRepo, repos.LendingRepo, repos.NotificationRepo, providers.Notifier, m),
	}
}
