package transport

import (
	"net"
	"sync/atomic"

	"github.com/indigo-web/pico/config"
)

// Supervisor runs a set of bound transports and brings all of them down as soon as any
// fails or Stop is called.
type Supervisor struct {
	stopped *atomic.Bool
	ts      []boundTransport
	stopch  chan struct{}
}

func NewSupervisor() Supervisor {
	return Supervisor{
		stopped: new(atomic.Bool),
		stopch:  make(chan struct{}),
	}
}

// Add binds the transport. On failure, every already added transport is closed.
func (s *Supervisor) Add(addr string, transport Transport, cb func(net.Conn)) error {
	err := transport.Bind(addr)
	if err != nil {
		s.close()
		return err
	}

	s.ts = append(s.ts, boundTransport{
		cb: cb,
		t:  transport,
	})

	return nil
}

// Addrs returns the addresses of all the added transports.
func (s *Supervisor) Addrs() []net.Addr {
	addrs := make([]net.Addr, len(s.ts))
	for i, t := range s.ts {
		addrs[i] = t.t.Addr()
	}

	return addrs
}

// Run blocks until either a transport returns or Stop is called. In both cases, every
// transport is stopped and waited for, so no connection is being served after Run returns.
func (s *Supervisor) Run(cfg config.NET) error {
	if len(s.ts) == 0 {
		return nil
	}

	errch := make(chan error)

	for _, t := range s.ts {
		go func(t boundTransport) {
			errch <- t.t.Listen(cfg, t.cb)
		}(t)
	}

	select {
	case err := <-errch:
		s.shutdown()
		drain(errch, len(s.ts)-1)
		s.wait()

		return err
	case <-s.stopch:
		s.shutdown()
		drain(errch, len(s.ts))
		s.wait()
		s.stopch <- struct{}{}

		return nil
	}
}

// Stop blocks until Run returns. Must not be called if Run isn't running.
func (s *Supervisor) Stop() {
	if !s.stopped.Load() {
		s.stopch <- struct{}{}
		<-s.stopch
	}
}

// shutdown makes the accept loops quit. Closing the listeners interrupts a pending Accept
// instead of waiting for the loop interrupt period.
func (s *Supervisor) shutdown() {
	s.stopped.Store(true)

	for _, t := range s.ts {
		t.t.Stop()
		t.t.Close()
	}
}

// wait must be called only after all the accept loops have returned.
func (s *Supervisor) wait() {
	for _, t := range s.ts {
		t.t.Wait()
	}
}

func (s *Supervisor) close() {
	for _, t := range s.ts {
		t.t.Close()
	}
}

type boundTransport struct {
	cb func(conn net.Conn)
	t  Transport
}

func drain(ch <-chan error, n int) {
	for range n {
		<-ch
	}
}
