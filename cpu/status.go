package cpu

func iCLC(f Facade) { f.AddCycles(1); f.FlagSet(PCarry, false) }
func iSEC(f Facade) { f.AddCycles(1); f.FlagSet(PCarry, true) }
func iCLD(f Facade) { f.AddCycles(1); f.FlagSet(PDecimal, false) }
func iSED(f Facade) { f.AddCycles(1); f.FlagSet(PDecimal, true) }
func iCLI(f Facade) { f.AddCycles(1); f.FlagSet(PInterrupt, false) }
func iSEI(f Facade) { f.AddCycles(1); f.FlagSet(PInterrupt, true) }
func iCLV(f Facade) { f.AddCycles(1); f.FlagSet(POverflow, false) }
