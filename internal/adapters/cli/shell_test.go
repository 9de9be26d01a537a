package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"addressbook/internal/adapters/cli/contact"
	"addressbook/internal/adapters/cli/response"
	"addressbook/internal/adapters/cli/system"
	contactRepo "addressbook/internal/adapters/repository/memory"
	validatorAdapter "addressbook/internal/adapters/validator"
	"addressbook/internal/core/usecase/addressbook"
	"addressbook/internal/platform/collation"
	"addressbook/internal/platform/logger"
	"addressbook/internal/platform/metrics"
)

const (
	amitLine  = `add Amit Kumar "Sector 12" Delhi Delhi 110011 9876543210 amit.kumar@example.com`
	rohitLine = `add Rohit Sharma "MG Road" Mumbai Maharashtra 400001 9988776655 rohit.sharma@example.com`
	priyaLine = `add Priya Singh "Park Street" Kolkata "West Bengal" 700016 9123456789 priya.singh@example.com`

	amitContact  = "Amit Kumar, Sector 12, Delhi, Delhi, 110011, 9876543210, amit.kumar@example.com"
	rohitContact = "Rohit Sharma, MG Road, Mumbai, Maharashtra, 400001, 9988776655, rohit.sharma@example.com"
	priyaContact = "Priya Singh, Park Street, Kolkata, West Bengal, 700016, 9123456789, priya.singh@example.com"
)

type ShellTestSuite struct {
	suite.Suite
	router Router
	out    bytes.Buffer
	errOut bytes.Buffer
}

func (suite *ShellTestSuite) SetupTest() {
	collator, err := collation.New("en")
	suite.Require().NoError(err)

	provider, err := metrics.NewProvider()
	suite.Require().NoError(err)

	usecase := addressbook.NewUsecase(contactRepo.NewRepository(), collator)

	suite.router = NewRouter(RouterDependencies{
		Logger:          logger.NewNop(),
		MetricsProvider: provider,
		ContactHandler:  contact.NewHandler(usecase, validatorAdapter.NewPlaygroundAdapter(), response.NewRenderer(false)),
		SystemHandler:   system.NewHandler(provider),
	})

	suite.out.Reset()
	suite.errOut.Reset()
}

func (suite *ShellTestSuite) newShell(script string, interactive bool) *Shell {
	return newShell(strings.NewReader(script), &suite.out, &suite.errOut, suite.router, logger.NewNop(), "> ", interactive)
}

func (suite *ShellTestSuite) run(lines ...string) {
	err := suite.newShell(strings.Join(lines, "\n")+"\n", false).Run(context.Background())
	suite.Require().NoError(err)
}

func (suite *ShellTestSuite) TestAddAndList() {
	suite.run(amitLine, rohitLine, "count", "list")

	suite.Equal(
		"Added: "+amitContact+"\n"+
			"Added: "+rohitContact+"\n"+
			"2\n"+
			amitContact+"\n"+rohitContact+"\n",
		suite.out.String())
	suite.Empty(suite.errOut.String())
}

func (suite *ShellTestSuite) TestErrorsDoNotStopTheShell() {
	suite.run(
		amitLine,
		amitLine,
		`add amit Kumar "Sector 12" Delhi Delhi 110011 9876543210 amit.kumar@example.com`,
		"sort phone",
		`delete "Nobody Here"`,
		"count",
	)

	suite.Equal("Added: "+amitContact+"\n1\n", suite.out.String())
	suite.Equal(
		"error: Contact 'Amit Kumar' already exists\n"+
			"error: Invalid first_name: must start with a capital letter followed by at least two letters\n"+
			"error: Cannot sort by 'phone': use name, city, state or zip\n"+
			"error: Contact 'Nobody Here' not found\n",
		suite.errOut.String())
}

func (suite *ShellTestSuite) TestEditKeepsPosition() {
	suite.run(
		amitLine,
		rohitLine,
		`edit "Amit Kumar" Priya Singh "Park Street" Kolkata "West Bengal" 700016 9123456789 priya.singh@example.com`,
		"list",
	)

	suite.True(strings.HasSuffix(suite.out.String(), priyaContact+"\n"+rohitContact+"\n"), suite.out.String())
	suite.Empty(suite.errOut.String())
}

func (suite *ShellTestSuite) TestSortAndFilter() {
	suite.run(rohitLine, priyaLine, amitLine, "sort name", "view Mumbai", "count Delhi", `search "Priya Singh" "West Bengal"`, "sort city")

	expected := strings.Join([]string{
		"Added: " + rohitContact,
		"Added: " + priyaContact,
		"Added: " + amitContact,
		amitContact, priyaContact, rohitContact,
		rohitContact,
		"1",
		priyaContact,
		amitContact, priyaContact, rohitContact,
	}, "\n") + "\n"

	suite.Equal(expected, suite.out.String())
	suite.Empty(suite.errOut.String())
}

func (suite *ShellTestSuite) TestExitStopsReading() {
	suite.run(amitLine, "# comment", "", "quit", rohitLine)

	suite.Equal("Added: "+amitContact+"\n", suite.out.String())
}

func (suite *ShellTestSuite) TestCommandLineErrors() {
	suite.run("frobnicate", "add Amit", `view "Delhi`, "count a b")

	errOut := suite.errOut.String()
	suite.Contains(errOut, `error: unknown command "frobnicate"`)
	suite.Contains(errOut, "error: accepts 8 arg(s), received 1")
	suite.Contains(errOut, "error: cannot parse")
	suite.Contains(errOut, "error: accepts at most 1 arg(s), received 2")
	suite.Empty(suite.out.String())
}

func (suite *ShellTestSuite) TestStatsAndVersion() {
	suite.run(amitLine, "list", "stats", "version")

	out := suite.out.String()
	suite.Regexp(`addressbook_commands_total\{[^}]*command="add"[^}]*outcome="ok"[^}]*\} 1`, out)
	suite.Contains(out, "addressbook dev")
}

func (suite *ShellTestSuite) TestInteractivePrompt() {
	err := suite.newShell("count\n", true).Run(context.Background())
	suite.Require().NoError(err)

	suite.Equal("> 0\n> \n", suite.out.String())
}

func (suite *ShellTestSuite) TestStartStop() {
	shell := suite.newShell(amitLine+"\n", false)

	suite.Require().NoError(shell.Start(context.Background()))

	select {
	case <-shell.Done():
	case <-time.After(5 * time.Second):
		suite.Fail("shell did not finish at EOF")
	}
	suite.NoError(shell.Stop(context.Background()))
	suite.Equal("Added: "+amitContact+"\n", suite.out.String())
}

func TestShellTestSuite(t *testing.T) {
	suite.Run(t, new(ShellTestSuite))
}

func TestRouter_FreshTreePerCall(t *testing.T) {
	router := NewRouter(RouterDependencies{Logger: logger.NewNop()})

	first, second := router(), router()

	require.NotSame(t, first, second)
	for _, name := range []string{"add", "edit", "delete", "count", "search", "view", "sort", "list", "import", "stats", "version"} {
		cmd, _, err := first.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
