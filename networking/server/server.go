package server

import (
	"github.com/fernandosanchezjr/fastrng/networking/services"
	"github.com/valyala/gorpc"
)

func NewServer(address string, registry *services.Registry) *gorpc.Server {
	dispatcher := gorpc.NewDispatcher()
	for name, service := range registry.Services {
		dispatcher.AddService(name, service)
	}
	server := gorpc.NewTCPServer(address, dispatcher.NewHandlerFunc())
	server.LogError = gorpc.NilErrorLogger
	return server
}
