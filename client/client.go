package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
)

// Client speaks the line protocol over one persistent connection. Every
// call is one request line followed by one response line, so calls may be
// made from multiple goroutines; the mutex keeps request/response pairs
// together.
type Client struct {
	addr string

	mu   sync.Mutex
	conn net.Conn
	rd   *bufio.Reader
}

func New(address string) (*Client, error) {
	conn, err := net.Dial("tcp", address)
	if err != nil {
		return nil, err
	}
	return &Client{
		addr: address,
		conn: conn,
		rd:   bufio.NewReader(conn),
	}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Do sends one raw request line verbatim and returns the response line.
func (c *Client) Do(line string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintf(c.conn, "%s\n", line); err != nil {
		return "", err
	}
	resp, err := c.rd.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(resp, "\r\n"), nil
}

func (c *Client) Set(ctx context.Context, key, value string) error {
	resp, err := c.Do(fmt.Sprintf("SET %s %s", key, value))
	if err != nil {
		return err
	}
	if resp != "OK" {
		return errors.New(resp)
	}
	return nil
}

// Get returns the stored value and whether the key existed.
func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	resp, err := c.Do(fmt.Sprintf("GET %s", key))
	if err != nil {
		return "", false, err
	}
	if resp == "nil" {
		return "", false, nil
	}
	if strings.HasPrefix(resp, "ERR ") {
		return "", false, errors.New(resp)
	}
	return resp, true, nil
}

func (c *Client) Del(ctx context.Context, key string) error {
	resp, err := c.Do(fmt.Sprintf("DEL %s", key))
	if err != nil {
		return err
	}
	if resp != "OK" {
		return errors.New(resp)
	}
	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.Do("PING")
	if err != nil {
		return err
	}
	if resp != "PONG" {
		return errors.New(resp)
	}
	return nil
}

// Keys returns every key on the server. An empty store yields an empty
// slice.
func (c *Client) Keys(ctx context.Context) ([]string, error) {
	resp, err := c.Do("KEYS")
	if err != nil {
		return nil, err
	}
	if resp == "nil" {
		return nil, nil
	}
	if strings.HasPrefix(resp, "ERR ") {
		return nil, errors.New(resp)
	}
	return strings.Split(resp, ","), nil
}

// Stats returns the server's raw operation-counter line.
func (c *Client) Stats(ctx context.Context) (string, error) {
	resp, err := c.Do("STATS")
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(resp, "ERR ") {
		return "", errors.New(resp)
	}
	return resp, nil
}
