// Package ssh forwards a local port to the PostgreSQL server behind a
// bastion host, so `paibi seed` can load the dataset into a database
// that is not directly reachable.
//
// Design decisions:
//   - Uses golang.org/x/crypto/ssh for the client and its knownhosts
//     package for host key checks. Without a known_hosts file the host
//     key is accepted unverified and a warning is logged.
//   - The local side listens on 127.0.0.1:0; the kernel picks the port.
//   - Forwarding runs in background goroutines stopped by Stop, which
//     closes the listener and waits for open connections to drain.
//   - Only key-based authentication is supported (with optional passphrase).
package ssh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/DachengChen/paiBI/applog"
	"github.com/DachengChen/paiBI/config"
)

// Addr is the local tunnel endpoint.
type Addr struct {
	Host string
	Port int
}

// Tunnel is one SSH local port forward.
type Tunnel struct {
	clientConfig *ssh.ClientConfig
	bastion      string // "bastion:22"
	target       string // "db-host:5432"

	client   *ssh.Client
	listener net.Listener
	wg       sync.WaitGroup
	once     sync.Once
	done     chan struct{}
}

// NewTunnel prepares a tunnel to pgHost:pgPort via the configured
// bastion. Nothing is dialed until Start.
func NewTunnel(cfg config.SSHConfig, pgHost string, pgPort int) (*Tunnel, error) {
	auth, err := authMethods(cfg)
	if err != nil {
		return nil, err
	}
	hostKey, err := hostKeyCallback(cfg.KnownHostsPath)
	if err != nil {
		return nil, err
	}

	return &Tunnel{
		clientConfig: &ssh.ClientConfig{
			User:            cfg.User,
			Auth:            auth,
			HostKeyCallback: hostKey,
		},
		bastion: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		target:  net.JoinHostPort(pgHost, strconv.Itoa(pgPort)),
		done:    make(chan struct{}),
	}, nil
}

// Start connects to the bastion and begins forwarding. It returns the
// local address pgx should connect to.
func (t *Tunnel) Start(ctx context.Context) (*Addr, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", t.bastion)
	if err != nil {
		return nil, fmt.Errorf("ssh dial %s: %w", t.bastion, err)
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, t.bastion, t.clientConfig)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("ssh handshake %s: %w", t.bastion, err)
	}
	t.client = ssh.NewClient(c, chans, reqs)

	t.listener, err = net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.client.Close()
		return nil, fmt.Errorf("local listen: %w", err)
	}

	tcpAddr := t.listener.Addr().(*net.TCPAddr)
	applog.L().Info("ssh tunnel up",
		zap.String("bastion", t.bastion),
		zap.String("target", t.target),
		zap.Int("local_port", tcpAddr.Port))

	t.wg.Add(1)
	go t.acceptLoop()

	return &Addr{Host: "127.0.0.1", Port: tcpAddr.Port}, nil
}

// Stop tears down the tunnel. It is safe to call more than once.
func (t *Tunnel) Stop() {
	t.once.Do(func() {
		close(t.done)
		if t.listener != nil {
			t.listener.Close()
		}
		t.wg.Wait()
		if t.client != nil {
			t.client.Close()
		}
	})
}

func (t *Tunnel) acceptLoop() {
	defer t.wg.Done()
	for {
		local, err := t.listener.Accept()
		if err != nil {
			select {
			case <-t.done:
				return
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				return
			}
			continue
		}
		t.wg.Add(1)
		go t.forward(local)
	}
}

// forward pipes one local connection to the target until either side
// closes.
func (t *Tunnel) forward(local net.Conn) {
	defer t.wg.Done()
	defer local.Close()

	remote, err := t.client.Dial("tcp", t.target)
	if err != nil {
		applog.L().Warn("ssh forward", zap.String("target", t.target), zap.Error(err))
		return
	}
	defer remote.Close()

	done := make(chan struct{}, 2)
	go func() {
		_, _ = io.Copy(remote, local)
		done <- struct{}{}
	}()
	go func() {
		_, _ = io.Copy(local, remote)
		done <- struct{}{}
	}()
	<-done
}

func authMethods(cfg config.SSHConfig) ([]ssh.AuthMethod, error) {
	if cfg.KeyPath == "" {
		return nil, errors.New("no SSH authentication methods configured (provide --ssh-key)")
	}
	pem, err := os.ReadFile(cfg.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("read ssh key %s: %w", cfg.KeyPath, err)
	}

	var signer ssh.Signer
	if cfg.KeyPassphrase != "" {
		signer, err = ssh.ParsePrivateKeyWithPassphrase(pem, []byte(cfg.KeyPassphrase))
	} else {
		signer, err = ssh.ParsePrivateKey(pem)
	}
	if err != nil {
		return nil, fmt.Errorf("parse ssh key: %w", err)
	}
	return []ssh.AuthMethod{ssh.PublicKeys(signer)}, nil
}

// hostKeyCallback verifies against a known_hosts file when one is given.
func hostKeyCallback(path string) (ssh.HostKeyCallback, error) {
	if path == "" {
		applog.Event("ssh", "host key verification disabled; set known_hosts to enable")
		return ssh.InsecureIgnoreHostKey(), nil
	}
	cb, err := knownhosts.New(path)
	if err != nil {
		return nil, fmt.Errorf("known_hosts %s: %w", path, err)
	}
	return cb, nil
}
