package client

import (
	"net/url"
	"strings"

	"github.com/sitevista/gantry/pkg/api/http/common"
	"github.com/sitevista/gantry/pkg/structs"
)

// Client is a thin HTTP client for the gantry poller API.
type Client struct {
	url *url.URL
}

func New(address string) (*Client, error) {
	u, err := url.Parse(address)
	return &Client{url: u}, err
}

func (c *Client) GetStatus(taskID string) (*structs.TaskView, error) {
	addr := c.addr(taskPath(common.API_TASK, taskID))
	var out structs.TaskView
	return &out, genericGet(addr, &out)
}

func (c *Client) Cancel(taskID string) (*structs.CancelResult, error) {
	addr := c.addr(taskPath(common.API_CANCEL, taskID))
	var out structs.CancelResult
	return &out, genericPost(addr, nil, &out)
}

func (c *Client) ListTasks(q *structs.Query) (*structs.TaskPage, error) {
	addr := c.addr(common.API_TASKS)
	setQueryString(addr, q)
	var out structs.TaskPage
	return &out, genericGet(addr, &out)
}

func (c *Client) addr(path string) *url.URL {
	return &url.URL{Scheme: c.url.Scheme, Host: c.url.Host, Path: path}
}

func taskPath(pattern, taskID string) string {
	return strings.Replace(pattern, "{id}", url.PathEscape(taskID), 1)
}
