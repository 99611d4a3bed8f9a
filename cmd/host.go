package cmd

import (
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// workerCount resolves the --workers flag: 0 means one worker per logical core
func workerCount(requested int) int {
	if requested > 0 {
		return requested
	}

	if count, err := cpu.Counts(true); err == nil && count > 0 {
		return count
	}
	return runtime.NumCPU()
}

// logHostInfo reports the CPU model and free memory the render will run on
func logHostInfo() {
	if infos, err := cpu.Info(); err != nil {
		logger.Debugf("cpu info unavailable: %v", err)
	} else if len(infos) > 0 {
		logger.Infof("cpu: %s (%d logical cores)", infos[0].ModelName, runtime.NumCPU())
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		logger.Debugf("memory info unavailable: %v", err)
	} else {
		logger.Infof("memory: %d MB available of %d MB", vm.Available>>20, vm.Total>>20)
	}
}
