package mqtt

import (
	"context"
	"fmt"
	"sync"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/baotoq/buildingblocks/logging"
)

const (
	// defaultConnectTimeout bounds the initial connection attempt.
	defaultConnectTimeout = 10 * time.Second

	// defaultKeepAlive is the ping interval for dead-connection detection.
	defaultKeepAlive = 60 * time.Second

	// disconnectQuiesce is the grace period for in-flight operations on
	// disconnect, in milliseconds.
	disconnectQuiesce = 1000
)

// Options configures a PahoClient. BrokerURL and ClientID are required; the
// rest default sensibly.
type Options struct {
	// BrokerURL is the broker address, e.g. "tcp://localhost:1883".
	BrokerURL string
	// ClientID identifies this client on the broker.
	ClientID string
	// Username and Password are optional broker credentials.
	Username string
	Password string
	// ConnectTimeout bounds Connect; zero means 10s.
	ConnectTimeout time.Duration
	// KeepAlive is the ping interval; zero means 60s.
	KeepAlive time.Duration
	// Logger receives connection-state messages; nil means no logging.
	Logger logging.Logger
}

func (o Options) connectTimeout() time.Duration {
	if o.ConnectTimeout > 0 {
		return o.ConnectTimeout
	}
	return defaultConnectTimeout
}

// PahoClient implements Client on top of eclipse/paho.mqtt.golang.
// All methods are safe for concurrent use.
type PahoClient struct {
	opts   Options
	log    logging.Logger
	client pahomqtt.Client

	mu        sync.RWMutex
	connected bool
}

// Compile-time interface check
var _ Client = (*PahoClient)(nil)

// NewPahoClient creates an unconnected client. Call Connect before Publish.
func NewPahoClient(opts Options) *PahoClient {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	pahoOpts := pahomqtt.NewClientOptions()
	pahoOpts.AddBroker(opts.BrokerURL)
	pahoOpts.SetClientID(opts.ClientID)
	if opts.Username != "" {
		pahoOpts.SetUsername(opts.Username)
		pahoOpts.SetPassword(opts.Password)
	}
	pahoOpts.SetCleanSession(true)
	pahoOpts.SetConnectTimeout(opts.connectTimeout())
	keepAlive := opts.KeepAlive
	if keepAlive == 0 {
		keepAlive = defaultKeepAlive
	}
	pahoOpts.SetKeepAlive(keepAlive)

	c := &PahoClient{opts: opts, log: logger}

	pahoOpts.SetOnConnectHandler(func(_ pahomqtt.Client) {
		c.setConnected(true)
		c.log.Trace("mqtt connected to %s", opts.BrokerURL)
	})
	pahoOpts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		c.setConnected(false)
		c.log.Warn("mqtt connection lost: %v", err)
	})

	c.client = pahomqtt.NewClient(pahoOpts)
	return c
}

// Connect establishes the broker connection, bounded by ctx and the
// configured connect timeout, whichever ends first.
func (c *PahoClient) Connect(ctx context.Context) error {
	token := c.client.Connect()
	if err := c.wait(ctx, token, c.opts.connectTimeout()); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	// The OnConnect handler runs asynchronously and may not have fired yet;
	// record the state here so IsConnected is true on return.
	c.setConnected(true)
	return nil
}

// Publish sends the message to its topic and waits for broker acknowledgment
// according to the message's QoS level.
func (c *PahoClient) Publish(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if !c.IsConnected() {
		return ErrNotConnected
	}

	token := c.client.Publish(msg.Topic, msg.QoS, msg.Retain, []byte(msg.Payload))
	if err := c.wait(ctx, token, 0); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}
	return nil
}

// IsConnected reports the current connection state.
func (c *PahoClient) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected && c.client.IsConnectionOpen()
}

// Close disconnects from the broker if connected. It is idempotent.
func (c *PahoClient) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return nil
	}
	c.client.Disconnect(disconnectQuiesce)
	c.connected = false
	c.log.Trace("mqtt disconnected from %s", c.opts.BrokerURL)
	return nil
}

// wait blocks until the token completes, the context is done, or the optional
// timeout elapses.
func (c *PahoClient) wait(ctx context.Context, token pahomqtt.Token, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-token.Done():
		return token.Error()
	}
}

func (c *PahoClient) setConnected(connected bool) {
	c.mu.Lock()
	c.connected = connected
	c.mu.Unlock()
}
