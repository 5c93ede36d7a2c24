package backup

import (
	"os"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/studydash/internal/constants"
)

var (
	processesFunc = ps.Processes
	getpidFunc    = os.Getpid
)

// OtherInstances returns the PIDs of other running studydash processes.
// Restoring while one of them holds the store open would lose its writes.
func OtherInstances() ([]int, error) {
	procs, err := processesFunc()
	if err != nil {
		return nil, err
	}

	self := getpidFunc()
	var pids []int
	for _, p := range procs {
		if p == nil || p.Pid() == self {
			continue
		}
		if strings.TrimSuffix(p.Executable(), ".exe") == constants.AppName {
			pids = append(pids, p.Pid())
		}
	}
	return pids, nil
}
