package client

import (
	"errors"
	"strings"
	"time"

	"github.com/fernandosanchezjr/fastrng/networking/services"
	"github.com/valyala/gorpc"
)

const ClientTimeout = time.Second

var ServiceNotFound = errors.New("service not found")

func isTimeout(err error) bool {
	return strings.Contains(err.Error(), "timeout")
}

type Client struct {
	RpcClient   *gorpc.Client
	Dispatchers map[string]*gorpc.DispatcherClient
}

func NewClient(address string, registry *services.Registry) *Client {
	cl := &Client{
		RpcClient:   gorpc.NewTCPClient(address),
		Dispatchers: map[string]*gorpc.DispatcherClient{},
	}
	cl.RpcClient.RequestTimeout = ClientTimeout
	cl.RpcClient.LogError = gorpc.NilErrorLogger
	dispatcher := gorpc.NewDispatcher()
	for name, service := range registry.Services {
		dispatcher.AddService(name, service)
		cl.Dispatchers[name] = dispatcher.NewServiceClient(name, cl.RpcClient)
	}
	return cl
}

func (cl *Client) Start() {
	cl.RpcClient.Start()
}

func (cl *Client) Stop() {
	cl.RpcClient.Stop()
}

func (cl *Client) Restart() {
	cl.Stop()
	cl.Start()
}

func (cl *Client) Call(service, funcName string, request interface{}) (interface{}, error) {
	client, found := cl.Dispatchers[service]
	if !found {
		return nil, ServiceNotFound
	}
	result, err := client.Call(funcName, request)
	if err != nil && isTimeout(err) {
		cl.Restart()
	}
	return result, err
}
