package discovery

import (
	"fmt"
	"log"
	"slices"
	"strconv"

	"applicant-portal-service/internal/config"

	"github.com/hashicorp/consul/api"
)

type ServiceRegistry struct {
	client *api.Client
	config *config.Config
}

func NewServiceRegistry(config *config.Config) (*ServiceRegistry, error) {
	consulConfig := api.DefaultConfig()
	consulConfig.Address = config.Consul.ConsulAddress

	client, err := api.NewClient(consulConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Consul client: %v", err)
	}

	return &ServiceRegistry{
		client: client,
		config: config,
	}, nil
}

func (sr *ServiceRegistry) Register() error {
	httpPort, _ := strconv.Atoi(sr.config.Server.Port)

	httpRegistration := &api.AgentServiceRegistration{
		ID:      sr.config.Server.ServiceID + "-http",
		Name:    sr.config.Server.ServiceName,
		Port:    httpPort,
		Address: sr.config.Server.ServiceAddress,
		Check: &api.AgentServiceCheck{
			HTTP:     fmt.Sprintf("http://%s:%s/health", sr.config.Server.ServiceAddress, sr.config.Server.Port),
			Interval: "10s",
			Timeout:  "5s",
		},
		Tags: []string{"portal", "gateway", "http"},
		Meta: map[string]string{
			"protocol": "http",
		},
	}

	if err := sr.client.Agent().ServiceRegister(httpRegistration); err != nil {
		return fmt.Errorf("failed to register HTTP service with Consul: %v", err)
	}

	log.Println("Successfully registered HTTP service with Consul")
	return nil
}

func (sr *ServiceRegistry) Deregister() error {
	if err := sr.client.Agent().ServiceDeregister(sr.config.Server.ServiceID + "-http"); err != nil {
		log.Printf("Error deregistering HTTP service: %v", err)
	}
	return nil
}

// GetServiceAddress resolves a healthy instance of the named service,
// preferring instances whose registration matches the requested protocol.
func (sr *ServiceRegistry) GetServiceAddress(serviceName string, protocol string) (string, error) {
	if protocol == "" {
		protocol = "http"
	}

	services, meta, err := sr.client.Health().Service(serviceName, "", true, &api.QueryOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to find service %s: %v", serviceName, err)
	}

	log.Printf("Found %d instances of service %s (ConsulIndex: %d)", len(services), serviceName, meta.LastIndex)

	if len(services) == 0 {
		return "", fmt.Errorf("no healthy instances of service %s found", serviceName)
	}

	var matchingServices []*api.ServiceEntry
	for _, service := range services {
		if proto, ok := service.Service.Meta["protocol"]; ok && proto == protocol {
			matchingServices = append(matchingServices, service)
		} else if len(service.Service.Tags) > 0 {
			if slices.Contains(service.Service.Tags, protocol) {
				matchingServices = append(matchingServices, service)
			}
		}
	}

	if len(matchingServices) == 0 {
		return "", fmt.Errorf("no healthy instances of service %s with protocol %s found", serviceName, protocol)
	}

	service := matchingServices[0]

	address := service.Service.Address
	if address == "" {
		address = service.Node.Address
	}

	fullAddress := fmt.Sprintf("%s:%d", address, service.Service.Port)

	log.Printf("Using service address: %s (protocol: %s)", fullAddress, protocol)
	return fullAddress, nil
}
