package runtime

// CopyTable implements table.copy: copy n elements from src[srcOffset:]
// to dst[destOffset:]. Semantics match WebAssembly table.copy: when the
// destination range starts above the source range, iterate in descending
// order so source content is read before it is overwritten (spec.md §4.2,
// Copy; §3 SUPPLEMENTED FEATURES: the branch choice is "sourceOffset <
// destOffset", with equal offsets taking the ascending path).
//
// srcOffset+idx and destOffset+idx are added with addUint32Checked before
// either side is touched: a table's reservation can span the full 2^32
// element range on a 64-bit host, so an untrusted offset/n pair near
// UINT32_MAX must trap rather than silently wrap into a small, in-bounds
// index (WAVM's Lib/Runtime/Table.cpp widens this arithmetic before
// comparison for the same reason).
func CopyTable(dst, src *Table, destOffset, srcOffset, n uint32) error {
	if srcOffset < destOffset {
		for i := n; i > 0; i-- {
			idx := i - 1
			srcIdx, overflow := addUint32Checked(srcOffset, idx)
			if overflow {
				return &TableTrap{Kind: ErrOutOfBoundsTableAccess, Table: src, Index: srcOffset}
			}
			destIdx, overflow := addUint32Checked(destOffset, idx)
			if overflow {
				return &TableTrap{Kind: ErrOutOfBoundsTableAccess, Table: dst, Index: destOffset}
			}
			obj, err := src.getElement(srcIdx)
			if err != nil {
				return err
			}
			if err := dst.setElement(destIdx, obj); err != nil {
				return err
			}
		}
		return nil
	}
	for i := uint32(0); i < n; i++ {
		srcIdx, overflow := addUint32Checked(srcOffset, i)
		if overflow {
			return &TableTrap{Kind: ErrOutOfBoundsTableAccess, Table: src, Index: srcOffset}
		}
		destIdx, overflow := addUint32Checked(destOffset, i)
		if overflow {
			return &TableTrap{Kind: ErrOutOfBoundsTableAccess, Table: dst, Index: destOffset}
		}
		obj, err := src.getElement(srcIdx)
		if err != nil {
			return err
		}
		if err := dst.setElement(destIdx, obj); err != nil {
			return err
		}
	}
	return nil
}

// FillTable implements table.fill: write obj into dst[offset, offset+n);
// a nil obj is translated to the uninitialized sentinel (spec.md §4.2,
// Fill). offset+i is overflow-checked before the write for the same
// reason CopyTable checks its two offsets.
func FillTable(dst *Table, offset uint32, obj *Object, n uint32) error {
	for i := uint32(0); i < n; i++ {
		idx, overflow := addUint32Checked(offset, i)
		if overflow {
			return &TableTrap{Kind: ErrOutOfBoundsTableAccess, Table: dst, Index: offset}
		}
		if err := dst.setElement(idx, obj); err != nil {
			return err
		}
	}
	return nil
}
