package cmd

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// hostInfo summarizes the machine a frame was rendered on
type hostInfo struct {
	CPUModel     string
	LogicalCores int
	ClockGHz     float64
	TotalRAMGB   uint64
}

func (h hostInfo) String() string {
	return fmt.Sprintf("%s, %d logical cores @ %.2f GHz, %d GB RAM", h.CPUModel, h.LogicalCores, h.ClockGHz, h.TotalRAMGB)
}

func getHostInfo() (hostInfo, error) {
	cpuInfo, err := cpu.Info()
	if err != nil {
		return hostInfo{}, err
	}
	if len(cpuInfo) == 0 {
		return hostInfo{}, fmt.Errorf("no CPU information available")
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return hostInfo{}, err
	}

	return hostInfo{
		CPUModel:     cpuInfo[0].ModelName,
		LogicalCores: runtime.NumCPU(),
		ClockGHz:     cpuInfo[0].Mhz / 1000,
		TotalRAMGB:   memInfo.Total / (1024 * 1024 * 1024),
	}, nil
}

func logSystemInfo() {
	info, err := getHostInfo()
	if err != nil {
		logger.Debugf("host information unavailable: %v", err)
		return
	}
	logger.Infof("rendered on %s", info)
}
